package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
)

// AccountRepository implements repository.AccountStore on PostgreSQL.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a PostgreSQL-backed account store.
func NewAccountRepository(pool *pgxpool.Pool) repository.AccountStore {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, name, account_type, balance, currency, institution, account_number, notes, is_active, created_at, updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Name, &a.AccountType, &a.Balance, &a.Currency,
		&a.Institution, &a.AccountNumber, &a.Notes, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO accounts (name, account_type, balance, currency, institution, account_number, notes, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.AccountType, a.Balance, a.Currency, a.Institution, a.AccountNumber, a.Notes)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	a.IsActive = true
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAccountNotFound
		}
		return nil, fmt.Errorf("select account: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) List(ctx context.Context, activeOnly bool) ([]*models.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) Update(ctx context.Context, a *models.Account) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts
		 SET name = $2, account_type = $3, balance = $4, currency = $5,
		     institution = $6, account_number = $7, notes = $8, is_active = $9,
		     updated_at = now()
		 WHERE id = $1`,
		a.ID, a.Name, a.AccountType, a.Balance, a.Currency,
		a.Institution, a.AccountNumber, a.Notes, a.IsActive)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM accounts WHERE is_active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}
