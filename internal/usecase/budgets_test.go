package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
)

func TestPeriodWindowStart(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		period models.BudgetPeriod
		want   time.Time
	}{
		{models.PeriodMonthly, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{models.PeriodYearly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{models.BudgetPeriod("weekly"), now.AddDate(0, 0, -30)},
		{models.BudgetPeriod(""), now.AddDate(0, 0, -30)},
	}
	for _, c := range cases {
		if got := PeriodWindowStart(c.period, now); !got.Equal(c.want) {
			t.Fatalf("PeriodWindowStart(%q) = %v, want %v", c.period, got, c.want)
		}
	}
}

func TestBudgetCreateDuplicateCategory(t *testing.T) {
	budgets := newFakeBudgetStore()
	transactions := newFakeTransactionStore(nil)
	uc := NewBudgetUseCase(budgets, transactions, newTestLogger(t))
	ctx := context.Background()

	if _, err := uc.Create(ctx, models.BudgetCreateRequest{Category: "Groceries", Amount: 500, Period: "monthly"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := uc.Create(ctx, models.BudgetCreateRequest{Category: "Groceries", Amount: 300, Period: "monthly"})
	if !errors.Is(err, models.ErrDuplicateCategory) {
		t.Fatalf("expected ErrDuplicateCategory, got %v", err)
	}
}

func TestBudgetSpentRecomputedOnRead(t *testing.T) {
	accounts := newFakeAccountStore()
	transactions := newFakeTransactionStore(accounts)
	budgets := newFakeBudgetStore()
	ctx := context.Background()

	_ = accounts.Create(ctx, &models.Account{Name: "Checking", AccountType: models.AccountChecking, IsActive: true})

	now := time.Now()
	for _, amount := range []float64{40, 60} {
		err := transactions.Create(ctx, &models.Transaction{
			AccountID:       1,
			TransactionType: models.TransactionExpense,
			Amount:          amount,
			Category:        "Groceries",
			TransactionDate: now,
		})
		if err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
	// Outside the monthly window, must not count.
	err := transactions.Create(ctx, &models.Transaction{
		AccountID:       1,
		TransactionType: models.TransactionExpense,
		Amount:          999,
		Category:        "Groceries",
		TransactionDate: now.AddDate(0, -2, 0),
	})
	if err != nil {
		t.Fatalf("seed old transaction: %v", err)
	}

	uc := NewBudgetUseCase(budgets, transactions, newTestLogger(t))
	created, err := uc.Create(ctx, models.BudgetCreateRequest{Category: "Groceries", Amount: 500, Period: "monthly"})
	if err != nil {
		t.Fatalf("create budget: %v", err)
	}

	v, err := uc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get budget: %v", err)
	}
	if v.Spent != 100 {
		t.Fatalf("spent = %v, want 100", v.Spent)
	}
	if v.Remaining != 400 {
		t.Fatalf("remaining = %v, want 400", v.Remaining)
	}
	if v.PercentageUsed != 20 {
		t.Fatalf("percentage used = %v, want 20", v.PercentageUsed)
	}

	// The snapshot must have been written back.
	stored, err := budgets.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("stored budget: %v", err)
	}
	if stored.Spent != 100 {
		t.Fatalf("stored spent = %v, want 100", stored.Spent)
	}
}

func TestBudgetUpdateChangesLimitOnly(t *testing.T) {
	budgets := newFakeBudgetStore()
	transactions := newFakeTransactionStore(nil)
	uc := NewBudgetUseCase(budgets, transactions, newTestLogger(t))
	ctx := context.Background()

	created, err := uc.Create(ctx, models.BudgetCreateRequest{Category: "Dining", Amount: 200, Period: "monthly"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	amount := 350.0
	period := "yearly"
	v, err := uc.Update(ctx, created.ID, models.BudgetUpdateRequest{Amount: &amount, Period: &period})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if v.Amount != 350 {
		t.Fatalf("amount = %v, want 350", v.Amount)
	}
	if v.Period != models.PeriodYearly {
		t.Fatalf("period = %q, want yearly", v.Period)
	}
	if v.Category != "Dining" {
		t.Fatalf("category changed to %q", v.Category)
	}
}

func TestBudgetGetMissing(t *testing.T) {
	uc := NewBudgetUseCase(newFakeBudgetStore(), newFakeTransactionStore(nil), newTestLogger(t))
	_, err := uc.Get(context.Background(), 42)
	if !errors.Is(err, models.ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound, got %v", err)
	}
}
