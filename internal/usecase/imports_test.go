package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
)

func newImportFixture(t *testing.T) (*ImportUseCase, *fakeAccountStore, *fakeTransactionStore, *fakeInvestmentStore, *fakeEvents) {
	t.Helper()
	accounts := newFakeAccountStore()
	transactions := newFakeTransactionStore(accounts)
	investments := newFakeInvestmentStore()
	events := &fakeEvents{}
	uc := NewImportUseCase(accounts, transactions, investments, events, nil, newTestLogger(t))
	return uc, accounts, transactions, investments, events
}

func TestImportTransactionsBestEffort(t *testing.T) {
	uc, accounts, _, _, _ := newImportFixture(t)
	ctx := context.Background()
	seedAccount(t, accounts, 0)

	csv := `date,amount,type,category,merchant,description,account_id,tags
2024-01-01,100.00,income,Salary,Employer,January salary,1,
2024-01-02,not-a-number,expense,Groceries,Walmart,,1,
2024-01-03,30.00,expense,Transportation,Uber,,1,"work,commute"`

	res, err := uc.ImportTransactions(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.TotalRows != 3 {
		t.Fatalf("total rows = %d, want 3", res.TotalRows)
	}
	if res.Imported != 2 {
		t.Fatalf("imported = %d, want 2", res.Imported)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want 1 entry", res.Errors)
	}
	if !strings.HasPrefix(res.Errors[0], "row 2:") {
		t.Fatalf("error %q does not name row 2", res.Errors[0])
	}

	// Good rows took effect: +100 income, -30 expense.
	if got := accounts.balance(1); got != 70 {
		t.Fatalf("balance = %v, want 70", got)
	}
}

func TestImportTransactionsUnknownAccount(t *testing.T) {
	uc, _, _, _, _ := newImportFixture(t)

	csv := `date,amount,type,category,merchant,description,account_id,tags
2024-01-01,100.00,income,Salary,,,42,`

	res, err := uc.ImportTransactions(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 0 || len(res.Errors) != 1 {
		t.Fatalf("result = %+v, want 0 imported and 1 error", res)
	}
}

func TestImportTransactionsTags(t *testing.T) {
	uc, accounts, transactions, _, _ := newImportFixture(t)
	ctx := context.Background()
	seedAccount(t, accounts, 0)

	csv := `date,amount,type,category,merchant,description,account_id,tags
2024-01-02,50.00,expense,Groceries,Walmart,,1,"food,essential"`

	res, err := uc.ImportTransactions(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 {
		t.Fatalf("imported = %d, want 1", res.Imported)
	}

	rows, err := transactions.List(ctx, models.TransactionFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	if len(rows[0].Tags) != 2 || rows[0].Tags[0] != "food" || rows[0].Tags[1] != "essential" {
		t.Fatalf("tags = %v", rows[0].Tags)
	}
}

func TestImportAccounts(t *testing.T) {
	uc, accounts, _, _, _ := newImportFixture(t)
	ctx := context.Background()

	res, err := uc.ImportAccounts(ctx, strings.NewReader(AccountTemplate()))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 3 || len(res.Errors) != 0 {
		t.Fatalf("result = %+v, want 3 clean imports", res)
	}

	list, err := accounts.List(ctx, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d active accounts, want 3", len(list))
	}
	if list[2].Balance != -1500 {
		t.Fatalf("credit card balance = %v, want -1500", list[2].Balance)
	}
}

func TestImportAccountsInvalidType(t *testing.T) {
	uc, _, _, _, _ := newImportFixture(t)

	csv := `name,account_type,balance,currency,institution,account_number,notes
Vault,strongbox,100.00,USD,,,`

	res, err := uc.ImportAccounts(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 0 || len(res.Errors) != 1 {
		t.Fatalf("result = %+v, want rejection", res)
	}
}

func TestImportInvestmentsNormalizes(t *testing.T) {
	uc, _, _, investments, _ := newImportFixture(t)
	ctx := context.Background()

	csv := `symbol,name,asset_type,exchange,quantity,purchase_price,purchase_date,account_id,currency
aapl,Apple Inc,stock,,10,150.00,2024-01-01,2,`

	res, err := uc.ImportInvestments(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 {
		t.Fatalf("imported = %d, want 1: %v", res.Imported, res.Errors)
	}

	inv, err := investments.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("stored: %v", err)
	}
	if inv.Symbol != "AAPL" {
		t.Fatalf("symbol = %q, want AAPL", inv.Symbol)
	}
	if inv.Exchange != "US" {
		t.Fatalf("exchange = %q, want US default", inv.Exchange)
	}
	if inv.Currency != "USD" {
		t.Fatalf("currency = %q, want USD default", inv.Currency)
	}
	if inv.PurchaseDate == nil {
		t.Fatal("purchase date not parsed")
	}
}

func TestImportMalformedCSV(t *testing.T) {
	uc, _, _, _, _ := newImportFixture(t)

	csv := "date,amount\n\"unterminated"
	if _, err := uc.ImportTransactions(context.Background(), strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for malformed csv")
	}
}

func TestImportPublishesCompletionEvent(t *testing.T) {
	uc, accounts, _, _, events := newImportFixture(t)
	ctx := context.Background()
	seedAccount(t, accounts, 0)

	csv := `date,amount,type,category,merchant,description,account_id,tags
2024-01-01,10.00,income,,,,1,`

	if _, err := uc.ImportTransactions(ctx, strings.NewReader(csv)); err != nil {
		t.Fatalf("import: %v", err)
	}

	published := events.published()
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	if published[0].Type != models.EventImportCompleted {
		t.Fatalf("event type = %q", published[0].Type)
	}
}

func TestTemplatesParse(t *testing.T) {
	for name, tmpl := range map[string]string{
		"transactions": TransactionTemplate(),
		"accounts":     AccountTemplate(),
		"investments":  InvestmentTemplate(),
	} {
		rows, err := readRows(strings.NewReader(tmpl))
		if err != nil {
			t.Fatalf("%s template: %v", name, err)
		}
		if len(rows) != 3 {
			t.Fatalf("%s template has %d rows, want 3", name, len(rows))
		}
	}
}
