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

// InvestmentRepository implements repository.InvestmentStore on PostgreSQL.
type InvestmentRepository struct {
	pool *pgxpool.Pool
}

// NewInvestmentRepository creates a PostgreSQL-backed investment store.
func NewInvestmentRepository(pool *pgxpool.Pool) repository.InvestmentStore {
	return &InvestmentRepository{pool: pool}
}

const investmentColumns = `id, account_id, symbol, name, asset_type, exchange, quantity, purchase_price, current_price, currency, purchase_date, created_at, updated_at`

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	var inv models.Investment
	err := row.Scan(&inv.ID, &inv.AccountID, &inv.Symbol, &inv.Name, &inv.AssetType,
		&inv.Exchange, &inv.Quantity, &inv.PurchasePrice, &inv.CurrentPrice,
		&inv.Currency, &inv.PurchaseDate, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *models.Investment) error {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO investments (account_id, symbol, name, asset_type, exchange, quantity, purchase_price, current_price, currency, purchase_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		inv.AccountID, inv.Symbol, inv.Name, inv.AssetType, inv.Exchange,
		inv.Quantity, inv.PurchasePrice, inv.CurrentPrice, inv.Currency, inv.PurchaseDate)
	if err := row.Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id int64) (*models.Investment, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE id = $1`, id)
	inv, err := scanInvestment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("select investment: %w", err)
	}
	return inv, nil
}

// List returns all holdings, or only those in accountID when non-zero.
func (r *InvestmentRepository) List(ctx context.Context, accountID int64) ([]*models.Investment, error) {
	q := `SELECT ` + investmentColumns + ` FROM investments`
	args := []interface{}{}
	if accountID != 0 {
		q += ` WHERE account_id = $1`
		args = append(args, accountID)
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	investments := make([]*models.Investment, 0)
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func (r *InvestmentRepository) Update(ctx context.Context, inv *models.Investment) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE investments
		 SET symbol = $2, name = $3, asset_type = $4, exchange = $5, quantity = $6,
		     purchase_price = $7, current_price = $8, currency = $9, purchase_date = $10,
		     updated_at = now()
		 WHERE id = $1`,
		inv.ID, inv.Symbol, inv.Name, inv.AssetType, inv.Exchange, inv.Quantity,
		inv.PurchasePrice, inv.CurrentPrice, inv.Currency, inv.PurchaseDate)
	if err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM investments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrInvestmentNotFound
	}
	return nil
}

// UpdatePrice caches the last observed market price. The write is discarded
// without error when the row was deleted meanwhile.
func (r *InvestmentRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE investments SET current_price = $2, updated_at = now() WHERE id = $1`, id, price)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	return nil
}
