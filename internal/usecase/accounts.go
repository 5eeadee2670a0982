package usecase

import (
	"context"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
)

// AccountUseCase owns account CRUD. Balances are only seeded here; every
// later movement goes through the transaction ledger.
type AccountUseCase struct {
	accounts drepo.AccountStore
	log      *logger.Logger
}

// NewAccountUseCase creates the account use case.
func NewAccountUseCase(accounts drepo.AccountStore, log *logger.Logger) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, log: log.With("accounts")}
}

func (uc *AccountUseCase) Create(ctx context.Context, req models.AccountCreateRequest) (*models.Account, error) {
	a := &models.Account{
		Name:          req.Name,
		AccountType:   models.AccountType(req.AccountType),
		Balance:       req.Balance,
		Currency:      req.Currency,
		Institution:   req.Institution,
		AccountNumber: req.AccountNumber,
		Notes:         req.Notes,
		IsActive:      true,
	}
	if err := uc.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.log.Info("account created",
		logger.Int64("id", a.ID),
		logger.String("type", string(a.AccountType)))
	return a, nil
}

func (uc *AccountUseCase) Get(ctx context.Context, id int64) (*models.Account, error) {
	return uc.accounts.GetByID(ctx, id)
}

func (uc *AccountUseCase) List(ctx context.Context) ([]*models.Account, error) {
	return uc.accounts.List(ctx, false)
}

func (uc *AccountUseCase) Update(ctx context.Context, id int64, req models.AccountUpdateRequest) (*models.Account, error) {
	a, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Balance != nil {
		a.Balance = *req.Balance
	}
	if req.Institution != nil {
		a.Institution = *req.Institution
	}
	if req.AccountNumber != nil {
		a.AccountNumber = *req.AccountNumber
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := uc.accounts.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *AccountUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.accounts.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info("account deleted", logger.Int64("id", id))
	return nil
}
