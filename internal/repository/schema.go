package repository

// Schema returns the idempotent DDL for all ledger tables. Statements are
// applied in order at startup.
func Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id             BIGSERIAL PRIMARY KEY,
			name           TEXT NOT NULL,
			account_type   TEXT NOT NULL,
			balance        DOUBLE PRECISION NOT NULL DEFAULT 0,
			currency       TEXT NOT NULL DEFAULT 'USD',
			institution    TEXT NOT NULL DEFAULT '',
			account_number TEXT NOT NULL DEFAULT '',
			notes          TEXT NOT NULL DEFAULT '',
			is_active      BOOLEAN NOT NULL DEFAULT TRUE,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id               BIGSERIAL PRIMARY KEY,
			account_id       BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			transaction_type TEXT NOT NULL,
			amount           DOUBLE PRECISION NOT NULL,
			category         TEXT NOT NULL DEFAULT '',
			merchant         TEXT NOT NULL DEFAULT '',
			description      TEXT NOT NULL DEFAULT '',
			tags             TEXT NOT NULL DEFAULT '',
			transaction_date TIMESTAMPTZ NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions (account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (transaction_date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions (category)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id         BIGSERIAL PRIMARY KEY,
			category   TEXT NOT NULL UNIQUE,
			amount     DOUBLE PRECISION NOT NULL,
			period     TEXT NOT NULL DEFAULT 'monthly',
			spent      DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			id             BIGSERIAL PRIMARY KEY,
			account_id     BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			symbol         TEXT NOT NULL,
			name           TEXT NOT NULL DEFAULT '',
			asset_type     TEXT NOT NULL DEFAULT 'stock',
			exchange       TEXT NOT NULL DEFAULT 'US',
			quantity       DOUBLE PRECISION NOT NULL,
			purchase_price DOUBLE PRECISION NOT NULL,
			current_price  DOUBLE PRECISION NOT NULL DEFAULT 0,
			currency       TEXT NOT NULL DEFAULT 'USD',
			purchase_date  TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_investments_account ON investments (account_id)`,
	}
}
