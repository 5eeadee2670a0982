package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
)

// BudgetRepository implements repository.BudgetStore on PostgreSQL.
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a PostgreSQL-backed budget store.
func NewBudgetRepository(pool *pgxpool.Pool) repository.BudgetStore {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = `id, category, amount, period, spent, created_at, updated_at`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var b models.Budget
	err := row.Scan(&b.ID, &b.Category, &b.Amount, &b.Period, &b.Spent, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) Create(ctx context.Context, b *models.Budget) error {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO budgets (category, amount, period)
		 VALUES ($1, $2, $3)
		 RETURNING id, spent, created_at, updated_at`,
		b.Category, b.Amount, b.Period)
	if err := row.Scan(&b.ID, &b.Spent, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrDuplicateCategory
		}
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id int64) (*models.Budget, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id)
	b, err := scanBudget(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("select budget: %w", err)
	}
	return b, nil
}

func (r *BudgetRepository) List(ctx context.Context) ([]*models.Budget, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+budgetColumns+` FROM budgets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	budgets := make([]*models.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) Update(ctx context.Context, b *models.Budget) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE budgets
		 SET category = $2, amount = $3, period = $4, updated_at = now()
		 WHERE id = $1`,
		b.ID, b.Category, b.Amount, b.Period)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrDuplicateCategory
		}
		return fmt.Errorf("update budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrBudgetNotFound
	}
	return nil
}

// UpdateSpent writes a recomputed spend snapshot. The write is discarded
// without error when the row no longer exists.
func (r *BudgetRepository) UpdateSpent(ctx context.Context, id int64, spent float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE budgets SET spent = $2, updated_at = now() WHERE id = $1`, id, spent)
	if err != nil {
		return fmt.Errorf("update spent: %w", err)
	}
	return nil
}
