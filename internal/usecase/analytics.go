package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/util"
)

// AnalyticsUseCase derives read-only aggregates from the ledger and the
// portfolio. It never mutates stored balances; holdings are priced in memory
// for net worth without writing the prices back.
type AnalyticsUseCase struct {
	accounts     drepo.AccountStore
	transactions drepo.TransactionStore
	investments  drepo.InvestmentStore
	prices       *PriceFetcher
	log          *logger.Logger
	now          func() time.Time
}

// NewAnalyticsUseCase creates the analytics use case.
func NewAnalyticsUseCase(
	accounts drepo.AccountStore,
	transactions drepo.TransactionStore,
	investments drepo.InvestmentStore,
	prices *PriceFetcher,
	log *logger.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		accounts:     accounts,
		transactions: transactions,
		investments:  investments,
		prices:       prices,
		log:          log.With("analytics"),
		now:          time.Now,
	}
}

// NetWorth sums asset balances, liability balances (absolute value), and the
// live value of all holdings.
func (uc *AnalyticsUseCase) NetWorth(ctx context.Context) (*models.NetWorth, error) {
	accounts, err := uc.accounts.List(ctx, false)
	if err != nil {
		return nil, err
	}

	var assets, liabilities float64
	for _, a := range accounts {
		switch {
		case a.AccountType.IsAsset():
			assets += a.Balance
		case a.AccountType.IsLiability():
			liabilities += math.Abs(a.Balance)
		}
	}

	investments, err := uc.investments.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	if len(investments) > 0 {
		reqs := make([]PriceRequest, 0, len(investments))
		for _, inv := range investments {
			reqs = append(reqs, PriceRequest{Symbol: inv.Symbol, Exchange: inv.Exchange})
		}
		prices := uc.prices.FetchPrices(ctx, reqs)
		for _, inv := range investments {
			price := inv.CurrentPrice
			if p, ok := prices[inv.PriceKey()]; ok {
				price = p
			}
			assets += inv.Quantity * price
		}
	}

	return &models.NetWorth{
		NetWorth:         assets - liabilities,
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		Timestamp:        uc.now(),
	}, nil
}

// CashFlow sums income against expenses inside [from, to], defaulting to the
// trailing 30 days.
func (uc *AnalyticsUseCase) CashFlow(ctx context.Context, req models.CashFlowRequest) (*models.CashFlow, error) {
	from, to := uc.window(req.StartDate, req.EndDate)

	income, err := uc.transactions.SumByType(ctx, models.TransactionIncome, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.transactions.SumByType(ctx, models.TransactionExpense, from, to)
	if err != nil {
		return nil, err
	}

	return &models.CashFlow{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetCashFlow:   income - expenses,
		StartDate:     from,
		EndDate:       to,
	}, nil
}

// SpendingByCategory breaks expenses down per category, largest first, with
// each category's share of the total.
func (uc *AnalyticsUseCase) SpendingByCategory(ctx context.Context, req models.CashFlowRequest) (*models.SpendingBreakdown, error) {
	from, to := uc.window(req.StartDate, req.EndDate)
	return uc.spendingBetween(ctx, from, to)
}

func (uc *AnalyticsUseCase) spendingBetween(ctx context.Context, from, to time.Time) (*models.SpendingBreakdown, error) {
	categories, err := uc.transactions.SpendingByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, c := range categories {
		total += c.Amount
	}
	for i := range categories {
		if total > 0 {
			categories[i].Percentage = categories[i].Amount / total * 100
		}
	}

	return &models.SpendingBreakdown{
		Categories:    categories,
		TotalSpending: total,
		StartDate:     from,
		EndDate:       to,
	}, nil
}

// Trend buckets income vs expenses per calendar month over a trailing window
// of months*30 days. Months outside [1, 24] are clamped.
func (uc *AnalyticsUseCase) Trend(ctx context.Context, months int) (*models.MonthlyTrend, error) {
	months = util.ClampInt(months, 1, 24)
	to := uc.now()
	from := to.AddDate(0, 0, -months*30)

	transactions, err := uc.transactions.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*models.TrendBucket)
	for _, t := range transactions {
		key := util.MonthKey(t.TransactionDate)
		b, ok := buckets[key]
		if !ok {
			b = &models.TrendBucket{Month: key}
			buckets[key] = b
		}
		switch t.TransactionType {
		case models.TransactionIncome:
			b.Income += t.Amount
		case models.TransactionExpense:
			b.Expenses += t.Amount
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	trend := make([]models.TrendBucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		b.Net = b.Income - b.Expenses
		trend = append(trend, *b)
	}

	return &models.MonthlyTrend{Trend: trend, Months: months}, nil
}

// AccountBalances lists active accounts ordered by absolute balance,
// largest first.
func (uc *AnalyticsUseCase) AccountBalances(ctx context.Context) ([]models.AccountBalance, error) {
	accounts, err := uc.accounts.List(ctx, true)
	if err != nil {
		return nil, err
	}

	balances := make([]models.AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		balances = append(balances, models.AccountBalance{
			ID:       a.ID,
			Name:     a.Name,
			Type:     a.AccountType,
			Balance:  a.Balance,
			Currency: a.Currency,
		})
	}
	sort.SliceStable(balances, func(i, j int) bool {
		return math.Abs(balances[i].Balance) > math.Abs(balances[j].Balance)
	})
	return balances, nil
}

// DashboardSummary composes net worth with month-to-date cash flow,
// spending, and counts.
func (uc *AnalyticsUseCase) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	now := uc.now()
	monthStart := util.MonthStart(now)

	netWorth, err := uc.NetWorth(ctx)
	if err != nil {
		return nil, err
	}

	income, err := uc.transactions.SumByType(ctx, models.TransactionIncome, monthStart, now)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.transactions.SumByType(ctx, models.TransactionExpense, monthStart, now)
	if err != nil {
		return nil, err
	}

	spending, err := uc.spendingBetween(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	accountCount, err := uc.accounts.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	txnCount, err := uc.transactions.CountSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		NetWorth: *netWorth,
		CurrentMonthCashFlow: models.CashFlow{
			TotalIncome:   income,
			TotalExpenses: expenses,
			NetCashFlow:   income - expenses,
			StartDate:     monthStart,
			EndDate:       now,
		},
		CurrentMonthSpending:         *spending,
		AccountCount:                 accountCount,
		CurrentMonthTransactionCount: txnCount,
		Timestamp:                    now,
	}, nil
}

// window resolves an optional date range, defaulting to the trailing 30 days.
func (uc *AnalyticsUseCase) window(startDate, endDate string) (time.Time, time.Time) {
	now := uc.now()
	from := util.ParseTimeDefault(startDate, now.AddDate(0, 0, -30))
	to := util.ParseTimeDefault(endDate, now)
	return from, to
}
