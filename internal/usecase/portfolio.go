package usecase

import (
	"context"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
)

// PortfolioUseCase owns holdings and their valuation. Every read that prices
// holdings refreshes current_price from the market first; failed lookups
// surface as 0.0, never as request errors.
type PortfolioUseCase struct {
	investments drepo.InvestmentStore
	accounts    drepo.AccountStore
	prices      *PriceFetcher
	metrics     drepo.Metrics
	log         *logger.Logger
}

// NewPortfolioUseCase creates the portfolio use case.
func NewPortfolioUseCase(
	investments drepo.InvestmentStore,
	accounts drepo.AccountStore,
	prices *PriceFetcher,
	metrics drepo.Metrics,
	log *logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		investments: investments,
		accounts:    accounts,
		prices:      prices,
		metrics:     metrics,
		log:         log.With("portfolio"),
	}
}

func (uc *PortfolioUseCase) Create(ctx context.Context, req models.InvestmentCreateRequest) (*models.InvestmentView, error) {
	if _, err := uc.accounts.GetByID(ctx, req.AccountID); err != nil {
		return nil, err
	}

	inv := &models.Investment{
		AccountID:     req.AccountID,
		Symbol:        req.Symbol,
		Name:          req.Name,
		AssetType:     req.AssetType,
		Exchange:      req.Exchange,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		Currency:      req.Currency,
		PurchaseDate:  req.PurchaseDate,
	}

	// One lookup covers both the missing name and the initial price. A dead
	// vendor degrades to name=symbol, price=0.
	q, err := uc.prices.Quote(ctx, inv.Symbol, inv.Exchange)
	if err != nil {
		uc.log.Warn("initial quote unavailable",
			logger.String("symbol", inv.Symbol),
			logger.Error(err))
		if inv.Name == "" {
			inv.Name = inv.Symbol
		}
	} else {
		if inv.Name == "" {
			inv.Name = q.Name
		}
		inv.CurrentPrice = q.Price
	}

	if err := uc.investments.Create(ctx, inv); err != nil {
		return nil, err
	}
	uc.log.Info("investment created",
		logger.Int64("id", inv.ID),
		logger.String("symbol", inv.Symbol))
	v := inv.View()
	return &v, nil
}

func (uc *PortfolioUseCase) Get(ctx context.Context, id int64) (*models.InvestmentView, error) {
	inv, err := uc.investments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.refreshOne(ctx, inv)
	v := inv.View()
	return &v, nil
}

// List prices all holdings (optionally scoped to one account) in one batch
// before returning them.
func (uc *PortfolioUseCase) List(ctx context.Context, accountID int64) ([]models.InvestmentView, error) {
	investments, err := uc.investments.List(ctx, accountID)
	if err != nil {
		return nil, err
	}

	uc.refreshBatch(ctx, investments)

	views := make([]models.InvestmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, inv.View())
	}
	return views, nil
}

func (uc *PortfolioUseCase) Update(ctx context.Context, id int64, req models.InvestmentUpdateRequest) (*models.InvestmentView, error) {
	inv, err := uc.investments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		inv.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		inv.PurchasePrice = *req.PurchasePrice
	}
	if req.Name != nil {
		inv.Name = *req.Name
	}

	if err := uc.investments.Update(ctx, inv); err != nil {
		return nil, err
	}
	v := inv.View()
	return &v, nil
}

func (uc *PortfolioUseCase) Delete(ctx context.Context, id int64) error {
	return uc.investments.Delete(ctx, id)
}

// RefreshPrice forces a fresh lookup for one holding.
func (uc *PortfolioUseCase) RefreshPrice(ctx context.Context, id int64) (*models.InvestmentView, error) {
	inv, err := uc.investments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.refreshOne(ctx, inv)
	v := inv.View()
	return &v, nil
}

// Summary aggregates valuation across all holdings. With no holdings it
// returns the zero summary without touching the market.
func (uc *PortfolioUseCase) Summary(ctx context.Context) (*models.PortfolioSummary, error) {
	start := time.Now()
	defer func() {
		if uc.metrics != nil {
			uc.metrics.RecordLatency("portfolio_summary", time.Since(start).Seconds())
		}
	}()

	investments, err := uc.investments.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	if len(investments) == 0 {
		return &models.PortfolioSummary{}, nil
	}

	uc.refreshBatch(ctx, investments)

	s := &models.PortfolioSummary{HoldingsCount: len(investments)}
	for _, inv := range investments {
		s.TotalCost += inv.CostBasis()
		s.TotalValue += inv.CurrentValue()
	}
	s.TotalGainLoss = s.TotalValue - s.TotalCost
	if s.TotalCost > 0 {
		s.TotalGainLossPercentage = s.TotalGainLoss / s.TotalCost * 100
	}
	return s, nil
}

// Search proxies a ticker search to the market vendor. A vendor failure is
// logged and yields an empty result, never an error.
func (uc *PortfolioUseCase) Search(ctx context.Context, query string) []*models.Quote {
	q, err := uc.prices.Search(ctx, query)
	if err != nil {
		uc.log.Warn("ticker search failed",
			logger.String("query", query),
			logger.Error(err))
		return []*models.Quote{}
	}
	return []*models.Quote{q}
}

func (uc *PortfolioUseCase) refreshOne(ctx context.Context, inv *models.Investment) {
	inv.CurrentPrice = uc.prices.fetchOne(ctx, PriceRequest{Symbol: inv.Symbol, Exchange: inv.Exchange})
	uc.writeBack(ctx, inv)
}

func (uc *PortfolioUseCase) refreshBatch(ctx context.Context, investments []*models.Investment) {
	if len(investments) == 0 {
		return
	}

	reqs := make([]PriceRequest, 0, len(investments))
	for _, inv := range investments {
		reqs = append(reqs, PriceRequest{Symbol: inv.Symbol, Exchange: inv.Exchange})
	}

	prices := uc.prices.FetchPrices(ctx, reqs)
	for _, inv := range investments {
		if price, ok := prices[inv.PriceKey()]; ok {
			inv.CurrentPrice = price
		}
		uc.writeBack(ctx, inv)
	}
}

// writeBack caches the observed price; a holding deleted mid-flight just
// drops the write.
func (uc *PortfolioUseCase) writeBack(ctx context.Context, inv *models.Investment) {
	if err := uc.investments.UpdatePrice(ctx, inv.ID, inv.CurrentPrice); err != nil {
		uc.log.Warn("price write-back failed",
			logger.Int64("id", inv.ID),
			logger.Error(err))
	}
}
