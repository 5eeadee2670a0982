package usecase

import (
	"context"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/util"
)

// TransactionUseCase owns ledger rows and their balance effects. Income adds
// the amount to the owning account, expense subtracts it, transfer moves
// nothing. Deleting a row reverses its effect exactly; updates never touch
// balances.
type TransactionUseCase struct {
	transactions drepo.TransactionStore
	events       drepo.Events
	log          *logger.Logger
}

// NewTransactionUseCase creates the transaction use case.
func NewTransactionUseCase(transactions drepo.TransactionStore, events drepo.Events, log *logger.Logger) *TransactionUseCase {
	return &TransactionUseCase{
		transactions: transactions,
		events:       events,
		log:          log.With("transactions"),
	}
}

func (uc *TransactionUseCase) Create(ctx context.Context, req models.TransactionCreateRequest) (*models.Transaction, error) {
	t := &models.Transaction{
		AccountID:       req.AccountID,
		TransactionType: models.TransactionType(req.TransactionType),
		Amount:          req.Amount,
		Category:        req.Category,
		Merchant:        req.Merchant,
		Description:     req.Description,
		Tags:            req.Tags,
		TransactionDate: req.TransactionDate,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	if err := uc.transactions.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.publish(ctx, models.LedgerEvent{
		Type:          models.EventTransactionCreated,
		AccountID:     t.AccountID,
		TransactionID: t.ID,
		Amount:        t.Amount,
		BalanceEffect: t.TransactionType.BalanceEffect(t.Amount),
		OccurredAt:    time.Now(),
	})
	return t, nil
}

func (uc *TransactionUseCase) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	return uc.transactions.GetByID(ctx, id)
}

func (uc *TransactionUseCase) List(ctx context.Context, req models.TransactionListRequest) ([]*models.Transaction, error) {
	f := models.TransactionFilter{
		AccountID:       req.AccountID,
		Category:        req.Category,
		TransactionType: models.TransactionType(req.TransactionType),
		Limit:           req.Limit,
		Offset:          req.Offset,
	}
	if t, ok := util.ParseTime(req.StartDate); ok {
		f.StartDate = t
	}
	if t, ok := util.ParseTime(req.EndDate); ok {
		f.EndDate = t
	}
	return uc.transactions.List(ctx, f)
}

func (uc *TransactionUseCase) Update(ctx context.Context, id int64, req models.TransactionUpdateRequest) (*models.Transaction, error) {
	t, err := uc.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Merchant != nil {
		t.Merchant = *req.Merchant
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Tags != nil {
		t.Tags = *req.Tags
	}
	if req.TransactionDate != nil {
		t.TransactionDate = *req.TransactionDate
	}

	if err := uc.transactions.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *TransactionUseCase) Delete(ctx context.Context, id int64) error {
	t, err := uc.transactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.transactions.Delete(ctx, id); err != nil {
		return err
	}

	uc.publish(ctx, models.LedgerEvent{
		Type:          models.EventTransactionDeleted,
		AccountID:     t.AccountID,
		TransactionID: t.ID,
		Amount:        t.Amount,
		BalanceEffect: -t.TransactionType.BalanceEffect(t.Amount),
		OccurredAt:    time.Now(),
	})
	return nil
}

func (uc *TransactionUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.transactions.Categories(ctx)
}

// publish is fire-and-forget; a dead broker must not fail the request.
func (uc *TransactionUseCase) publish(ctx context.Context, e models.LedgerEvent) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, e); err != nil {
		uc.log.Warn("ledger event dropped",
			logger.String("type", e.Type),
			logger.Error(err))
	}
}
