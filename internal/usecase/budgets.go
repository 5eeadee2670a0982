package usecase

import (
	"context"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/util"
)

// BudgetUseCase tracks per-category spending limits. Spent is always
// recomputed from the ledger on read; the stored value is only a snapshot.
type BudgetUseCase struct {
	budgets      drepo.BudgetStore
	transactions drepo.TransactionStore
	log          *logger.Logger
	now          func() time.Time
}

// NewBudgetUseCase creates the budget use case.
func NewBudgetUseCase(budgets drepo.BudgetStore, transactions drepo.TransactionStore, log *logger.Logger) *BudgetUseCase {
	return &BudgetUseCase{
		budgets:      budgets,
		transactions: transactions,
		log:          log.With("budgets"),
		now:          time.Now,
	}
}

// PeriodWindowStart returns the start of the spend window for a budget
// period: first of the current month for monthly, January 1st for yearly,
// and a trailing 30 days for anything else.
func PeriodWindowStart(period models.BudgetPeriod, now time.Time) time.Time {
	switch period {
	case models.PeriodMonthly:
		return util.MonthStart(now)
	case models.PeriodYearly:
		return util.YearStart(now)
	default:
		return now.AddDate(0, 0, -30)
	}
}

func (uc *BudgetUseCase) Create(ctx context.Context, req models.BudgetCreateRequest) (*models.BudgetView, error) {
	b := &models.Budget{
		Category: req.Category,
		Amount:   req.Amount,
		Period:   models.BudgetPeriod(req.Period),
	}
	if err := uc.budgets.Create(ctx, b); err != nil {
		return nil, err
	}
	uc.log.Info("budget created",
		logger.Int64("id", b.ID),
		logger.String("category", b.Category))
	v := b.View()
	return &v, nil
}

func (uc *BudgetUseCase) Get(ctx context.Context, id int64) (*models.BudgetView, error) {
	b, err := uc.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.refreshSpent(ctx, b); err != nil {
		return nil, err
	}
	v := b.View()
	return &v, nil
}

func (uc *BudgetUseCase) List(ctx context.Context) ([]models.BudgetView, error) {
	budgets, err := uc.budgets.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.BudgetView, 0, len(budgets))
	for _, b := range budgets {
		if err := uc.refreshSpent(ctx, b); err != nil {
			return nil, err
		}
		views = append(views, b.View())
	}
	return views, nil
}

func (uc *BudgetUseCase) Update(ctx context.Context, id int64, req models.BudgetUpdateRequest) (*models.BudgetView, error) {
	b, err := uc.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.Period != nil {
		b.Period = models.BudgetPeriod(*req.Period)
	}

	if err := uc.budgets.Update(ctx, b); err != nil {
		return nil, err
	}
	if err := uc.refreshSpent(ctx, b); err != nil {
		return nil, err
	}
	v := b.View()
	return &v, nil
}

func (uc *BudgetUseCase) Delete(ctx context.Context, id int64) error {
	return uc.budgets.Delete(ctx, id)
}

// refreshSpent recomputes the category's expense total for the current
// window and writes the snapshot back. The write-back is best-effort; the
// budget may have been deleted meanwhile.
func (uc *BudgetUseCase) refreshSpent(ctx context.Context, b *models.Budget) error {
	since := PeriodWindowStart(b.Period, uc.now())
	spent, err := uc.transactions.SumCategorySince(ctx, b.Category, models.TransactionExpense, since)
	if err != nil {
		return err
	}
	b.Spent = spent
	if err := uc.budgets.UpdateSpent(ctx, b.ID, spent); err != nil {
		uc.log.Warn("spent snapshot not written",
			logger.Int64("id", b.ID),
			logger.Error(err))
	}
	return nil
}
