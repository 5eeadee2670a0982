package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
)

// TransactionRepository implements repository.TransactionStore on PostgreSQL.
// Create and Delete run inside a database transaction so the row and the
// account balance it affects move together.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a PostgreSQL-backed transaction store.
func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionStore {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, account_id, transaction_type, amount, category, merchant, description, tags, transaction_date, created_at, updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	var tags string
	err := row.Scan(&t.ID, &t.AccountID, &t.TransactionType, &t.Amount, &t.Category,
		&t.Merchant, &t.Description, &tags, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Tags = splitTags(tags)
	return &t, nil
}

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the account row so concurrent effects serialize.
	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT true FROM accounts WHERE id = $1 FOR UPDATE`, t.AccountID).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrAccountNotFound
		}
		return fmt.Errorf("lock account: %w", err)
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO transactions (account_id, transaction_type, amount, category, merchant, description, tags, transaction_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		t.AccountID, t.TransactionType, t.Amount, t.Category, t.Merchant,
		t.Description, joinTags(t.Tags), t.TransactionDate)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	if effect := t.TransactionType.BalanceEffect(t.Amount); effect != 0 {
		_, err = tx.Exec(ctx,
			`UPDATE accounts SET balance = balance + $2, updated_at = now() WHERE id = $1`,
			t.AccountID, effect)
		if err != nil {
			return fmt.Errorf("apply balance effect: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("select transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) List(ctx context.Context, f models.TransactionFilter) ([]*models.Transaction, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.AccountID != 0 {
		add("account_id = $%d", f.AccountID)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.TransactionType != "" {
		add("transaction_type = $%d", f.TransactionType)
	}
	if !f.StartDate.IsZero() {
		add("transaction_date >= $%d", f.StartDate)
	}
	if !f.EndDate.IsZero() {
		add("transaction_date <= $%d", f.EndDate)
	}

	q := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY transaction_date DESC`

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*models.Transaction, error) {
	txns := make([]*models.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// Update changes descriptive fields only. It never re-applies balance
// effects, matching create/delete being the only balance movers.
func (r *TransactionRepository) Update(ctx context.Context, t *models.Transaction) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE transactions
		 SET amount = $2, category = $3, merchant = $4, description = $5,
		     tags = $6, transaction_date = $7, updated_at = now()
		 WHERE id = $1`,
		t.ID, t.Amount, t.Category, t.Merchant, t.Description,
		joinTags(t.Tags), t.TransactionDate)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`DELETE FROM transactions WHERE id = $1
		 RETURNING account_id, transaction_type, amount`, id)
	var (
		accountID int64
		typ       models.TransactionType
		amount    float64
	)
	if err := row.Scan(&accountID, &typ, &amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrTransactionNotFound
		}
		return fmt.Errorf("delete transaction: %w", err)
	}

	// Reverse the original effect. A missing account is tolerated: the
	// cascade already removed the rows.
	if effect := typ.BalanceEffect(amount); effect != 0 {
		_, err = tx.Exec(ctx,
			`UPDATE accounts SET balance = balance - $2, updated_at = now() WHERE id = $1`,
			accountID, effect)
		if err != nil {
			return fmt.Errorf("reverse balance effect: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *TransactionRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT category FROM transactions WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *TransactionRepository) SumByType(ctx context.Context, typ models.TransactionType, from, to time.Time) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(sum(amount), 0) FROM transactions
		 WHERE transaction_type = $1 AND transaction_date >= $2 AND transaction_date <= $3`,
		typ, from, to).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum by type: %w", err)
	}
	return sum, nil
}

func (r *TransactionRepository) SumCategorySince(ctx context.Context, category string, typ models.TransactionType, since time.Time) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(sum(amount), 0) FROM transactions
		 WHERE category = $1 AND transaction_type = $2 AND transaction_date >= $3`,
		category, typ, since).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum category: %w", err)
	}
	return sum, nil
}

func (r *TransactionRepository) SpendingByCategory(ctx context.Context, from, to time.Time) ([]models.CategorySpend, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT category, sum(amount)
		 FROM transactions
		 WHERE transaction_type = 'expense' AND category <> ''
		   AND transaction_date >= $1 AND transaction_date <= $2
		 GROUP BY category
		 ORDER BY 2 DESC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("spending by category: %w", err)
	}
	defer rows.Close()

	spends := make([]models.CategorySpend, 0)
	for rows.Next() {
		var s models.CategorySpend
		if err := rows.Scan(&s.Category, &s.Amount); err != nil {
			return nil, fmt.Errorf("scan category spend: %w", err)
		}
		spends = append(spends, s)
	}
	return spends, rows.Err()
}

func (r *TransactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE transaction_date >= $1 AND transaction_date <= $2
		 ORDER BY transaction_date`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("list between: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *TransactionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM transactions WHERE transaction_date >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count since: %w", err)
	}
	return n, nil
}
