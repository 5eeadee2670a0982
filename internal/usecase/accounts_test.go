package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
)

func TestAccountCreateDefaultsActive(t *testing.T) {
	uc := NewAccountUseCase(newFakeAccountStore(), newTestLogger(t))

	a, err := uc.Create(context.Background(), models.AccountCreateRequest{
		Name:        "Savings",
		AccountType: "savings",
		Balance:     2500,
		Currency:    "USD",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("id not assigned")
	}
	if !a.IsActive {
		t.Fatal("new account must be active")
	}
}

func TestAccountUpdateMergesFields(t *testing.T) {
	store := newFakeAccountStore()
	uc := NewAccountUseCase(store, newTestLogger(t))
	ctx := context.Background()

	a, err := uc.Create(ctx, models.AccountCreateRequest{
		Name:        "Checking",
		AccountType: "checking",
		Balance:     1000,
		Currency:    "USD",
		Institution: "Chase",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Joint Checking"
	inactive := false
	updated, err := uc.Update(ctx, a.ID, models.AccountUpdateRequest{Name: &name, IsActive: &inactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Joint Checking" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.IsActive {
		t.Fatal("account still active")
	}
	if updated.Institution != "Chase" {
		t.Fatalf("institution changed to %q", updated.Institution)
	}
	if updated.Balance != 1000 {
		t.Fatalf("balance changed to %v", updated.Balance)
	}
}

func TestAccountGetMissing(t *testing.T) {
	uc := NewAccountUseCase(newFakeAccountStore(), newTestLogger(t))
	_, err := uc.Get(context.Background(), 7)
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountDelete(t *testing.T) {
	store := newFakeAccountStore()
	uc := NewAccountUseCase(store, newTestLogger(t))
	ctx := context.Background()

	a, err := uc.Create(ctx, models.AccountCreateRequest{Name: "Old", AccountType: "other"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, a.ID); !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound after delete, got %v", err)
	}
}
