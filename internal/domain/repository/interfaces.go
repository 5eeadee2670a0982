package repository

import (
	"context"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
)

// AccountStore is CRUD plus the aggregate counts the dashboard needs.
type AccountStore interface {
	Create(ctx context.Context, a *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Account, error)
	Update(ctx context.Context, a *models.Account) error
	Delete(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int64, error)
}

// TransactionStore owns both transaction rows and the balance effect those
// rows have on accounts. Create and Delete apply/reverse the effect inside
// one database transaction so balance and rows never diverge.
type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	List(ctx context.Context, f models.TransactionFilter) ([]*models.Transaction, error)
	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)

	SumByType(ctx context.Context, typ models.TransactionType, from, to time.Time) (float64, error)
	SumCategorySince(ctx context.Context, category string, typ models.TransactionType, since time.Time) (float64, error)
	SpendingByCategory(ctx context.Context, from, to time.Time) ([]models.CategorySpend, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*models.Transaction, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// BudgetStore enforces category uniqueness on create.
type BudgetStore interface {
	Create(ctx context.Context, b *models.Budget) error
	GetByID(ctx context.Context, id int64) (*models.Budget, error)
	List(ctx context.Context) ([]*models.Budget, error)
	Update(ctx context.Context, b *models.Budget) error
	Delete(ctx context.Context, id int64) error

	// UpdateSpent caches a recomputed spend snapshot. A missing row is not an
	// error: the write-back is discarded when the budget was deleted meanwhile.
	UpdateSpent(ctx context.Context, id int64, spent float64) error
}

// InvestmentStore is CRUD over holdings plus the price write-back cache.
type InvestmentStore interface {
	Create(ctx context.Context, inv *models.Investment) error
	GetByID(ctx context.Context, id int64) (*models.Investment, error)
	List(ctx context.Context, accountID int64) ([]*models.Investment, error)
	Update(ctx context.Context, inv *models.Investment) error
	Delete(ctx context.Context, id int64) error

	// UpdatePrice caches the last observed market price. Missing rows are
	// silently ignored, same contract as BudgetStore.UpdateSpent.
	UpdatePrice(ctx context.Context, id int64, price float64) error
}

// PriceSource is one blocking vendor lookup. Implementations may fail at any
// time with transport or parse errors; callers absorb those into defaults.
type PriceSource interface {
	FetchQuote(ctx context.Context, symbol, exchange string) (*models.Quote, error)
	SearchTicker(ctx context.Context, query string) (*models.Quote, error)
}

// Events publishes ledger lifecycle events. Implementations must be safe to
// call from request goroutines; errors are logged by callers, never surfaced.
type Events interface {
	Publish(ctx context.Context, e models.LedgerEvent) error
	Close() error
}

// Metrics records operational signals.
type Metrics interface {
	RecordPriceFetch(outcome string) // ok | defaulted | cached
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
	RecordImport(kind string, imported, failed int)
	RecordEventPublished(topic string, ok bool)
}
