package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
)

func seedAccount(t *testing.T, accounts *fakeAccountStore, balance float64) int64 {
	t.Helper()
	a := &models.Account{
		Name:        "Checking",
		AccountType: models.AccountChecking,
		Balance:     balance,
		Currency:    "USD",
		IsActive:    true,
	}
	if err := accounts.Create(context.Background(), a); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return a.ID
}

func TestTransactionBalanceEffects(t *testing.T) {
	cases := []struct {
		typ    string
		amount float64
		want   float64
	}{
		{"income", 100, 1100},
		{"expense", 100, 900},
		{"transfer", 100, 1000},
	}
	for _, c := range cases {
		t.Run(c.typ, func(t *testing.T) {
			accounts := newFakeAccountStore()
			store := newFakeTransactionStore(accounts)
			uc := NewTransactionUseCase(store, nil, newTestLogger(t))
			id := seedAccount(t, accounts, 1000)

			_, err := uc.Create(context.Background(), models.TransactionCreateRequest{
				AccountID:       id,
				TransactionType: c.typ,
				Amount:          c.amount,
				TransactionDate: time.Now(),
			})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if got := accounts.balance(id); got != c.want {
				t.Fatalf("balance = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTransactionDeleteReversesEffect(t *testing.T) {
	accounts := newFakeAccountStore()
	store := newFakeTransactionStore(accounts)
	uc := NewTransactionUseCase(store, nil, newTestLogger(t))
	id := seedAccount(t, accounts, 1000)
	ctx := context.Background()

	created, err := uc.Create(ctx, models.TransactionCreateRequest{
		AccountID:       id,
		TransactionType: "expense",
		Amount:          250,
		Category:        "Groceries",
		TransactionDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := accounts.balance(id); got != 750 {
		t.Fatalf("balance after create = %v, want 750", got)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := accounts.balance(id); got != 1000 {
		t.Fatalf("balance after delete = %v, want 1000", got)
	}
}

func TestTransactionCreateUnknownAccount(t *testing.T) {
	store := newFakeTransactionStore(newFakeAccountStore())
	uc := NewTransactionUseCase(store, nil, newTestLogger(t))

	_, err := uc.Create(context.Background(), models.TransactionCreateRequest{
		AccountID:       99,
		TransactionType: "income",
		Amount:          10,
		TransactionDate: time.Now(),
	})
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestTransactionUpdateNeverMovesBalance(t *testing.T) {
	accounts := newFakeAccountStore()
	store := newFakeTransactionStore(accounts)
	uc := NewTransactionUseCase(store, nil, newTestLogger(t))
	id := seedAccount(t, accounts, 1000)
	ctx := context.Background()

	created, err := uc.Create(ctx, models.TransactionCreateRequest{
		AccountID:       id,
		TransactionType: "expense",
		Amount:          100,
		TransactionDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	amount := 500.0
	updated, err := uc.Update(ctx, created.ID, models.TransactionUpdateRequest{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 500 {
		t.Fatalf("amount = %v, want 500", updated.Amount)
	}
	if got := accounts.balance(id); got != 900 {
		t.Fatalf("balance = %v, want 900 (unchanged by update)", got)
	}
}

func TestTransactionEventsPublished(t *testing.T) {
	accounts := newFakeAccountStore()
	store := newFakeTransactionStore(accounts)
	events := &fakeEvents{}
	uc := NewTransactionUseCase(store, events, newTestLogger(t))
	id := seedAccount(t, accounts, 0)
	ctx := context.Background()

	created, err := uc.Create(ctx, models.TransactionCreateRequest{
		AccountID:       id,
		TransactionType: "income",
		Amount:          100,
		TransactionDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	published := events.published()
	if len(published) != 2 {
		t.Fatalf("published %d events, want 2", len(published))
	}
	if published[0].Type != models.EventTransactionCreated || published[0].BalanceEffect != 100 {
		t.Fatalf("create event = %+v", published[0])
	}
	if published[1].Type != models.EventTransactionDeleted || published[1].BalanceEffect != -100 {
		t.Fatalf("delete event = %+v", published[1])
	}
}

func TestTransactionCreateNilTags(t *testing.T) {
	accounts := newFakeAccountStore()
	store := newFakeTransactionStore(accounts)
	uc := NewTransactionUseCase(store, nil, newTestLogger(t))
	id := seedAccount(t, accounts, 0)

	created, err := uc.Create(context.Background(), models.TransactionCreateRequest{
		AccountID:       id,
		TransactionType: "income",
		Amount:          1,
		TransactionDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Tags == nil {
		t.Fatal("tags must be an empty slice, not nil")
	}
}
