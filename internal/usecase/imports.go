package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/util"
)

// ImportUseCase imports ledger entities from CSV. Imports are best-effort:
// a row that fails to parse or persist is recorded in the error list and the
// rest of the file continues.
type ImportUseCase struct {
	accounts     drepo.AccountStore
	transactions drepo.TransactionStore
	investments  drepo.InvestmentStore
	events       drepo.Events
	metrics      drepo.Metrics
	log          *logger.Logger
}

// NewImportUseCase creates the CSV import use case.
func NewImportUseCase(
	accounts drepo.AccountStore,
	transactions drepo.TransactionStore,
	investments drepo.InvestmentStore,
	events drepo.Events,
	metrics drepo.Metrics,
	log *logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		accounts:     accounts,
		transactions: transactions,
		investments:  investments,
		events:       events,
		metrics:      metrics,
		log:          log.With("imports"),
	}
}

// row is one CSV record with header-keyed access.
type row map[string]string

func (r row) get(key string) string { return strings.TrimSpace(r[key]) }

func (r row) requireFloat(key string) (float64, error) {
	v, err := strconv.ParseFloat(r.get(key), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, r.get(key))
	}
	return v, nil
}

func (r row) requireInt(key string) (int64, error) {
	v, err := strconv.ParseInt(r.get(key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, r.get(key))
	}
	return v, nil
}

// readRows parses the CSV into header-keyed rows. Short records are padded;
// a malformed record aborts the whole import since column alignment is gone.
func readRows(src io.Reader) ([]row, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		r := make(row, len(header))
		for i, name := range header {
			if i < len(record) {
				r[name] = record[i]
			}
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// ImportTransactions imports rows with columns
// date, amount, type, category, merchant, description, account_id, tags.
func (uc *ImportUseCase) ImportTransactions(ctx context.Context, src io.Reader) (*models.ImportResult, error) {
	rows, err := readRows(src)
	if err != nil {
		return nil, err
	}

	res := &models.ImportResult{Errors: []string{}, TotalRows: len(rows)}
	for i, r := range rows {
		t, err := parseTransactionRow(r)
		if err == nil {
			err = uc.transactions.Create(ctx, t)
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		res.Imported++
	}

	uc.finish(ctx, "transactions", res)
	return res, nil
}

func parseTransactionRow(r row) (*models.Transaction, error) {
	date, ok := util.ParseTime(r.get("date"))
	if !ok {
		return nil, fmt.Errorf("invalid date %q", r.get("date"))
	}
	amount, err := r.requireFloat("amount")
	if err != nil {
		return nil, err
	}
	accountID, err := r.requireInt("account_id")
	if err != nil {
		return nil, err
	}
	typ := models.TransactionType(strings.ToLower(r.get("type")))
	if !models.IsValidTransactionType(typ) {
		return nil, fmt.Errorf("invalid type %q", r.get("type"))
	}

	tags := []string{}
	if raw := r.get("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	return &models.Transaction{
		AccountID:       accountID,
		TransactionType: typ,
		Amount:          amount,
		Category:        r.get("category"),
		Merchant:        r.get("merchant"),
		Description:     r.get("description"),
		Tags:            tags,
		TransactionDate: date,
	}, nil
}

// ImportAccounts imports rows with columns
// name, account_type, balance, currency, institution, account_number, notes.
func (uc *ImportUseCase) ImportAccounts(ctx context.Context, src io.Reader) (*models.ImportResult, error) {
	rows, err := readRows(src)
	if err != nil {
		return nil, err
	}

	res := &models.ImportResult{Errors: []string{}, TotalRows: len(rows)}
	for i, r := range rows {
		a, err := parseAccountRow(r)
		if err == nil {
			err = uc.accounts.Create(ctx, a)
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		res.Imported++
	}

	uc.finish(ctx, "accounts", res)
	return res, nil
}

func parseAccountRow(r row) (*models.Account, error) {
	if r.get("name") == "" {
		return nil, fmt.Errorf("missing name")
	}
	typ := models.AccountType(strings.ToLower(r.get("account_type")))
	if !models.IsValidAccountType(typ) {
		return nil, fmt.Errorf("invalid account_type %q", r.get("account_type"))
	}
	balance, err := r.requireFloat("balance")
	if err != nil {
		return nil, err
	}

	currency := r.get("currency")
	if currency == "" {
		currency = "USD"
	}

	return &models.Account{
		Name:          r.get("name"),
		AccountType:   typ,
		Balance:       balance,
		Currency:      currency,
		Institution:   r.get("institution"),
		AccountNumber: r.get("account_number"),
		Notes:         r.get("notes"),
		IsActive:      true,
	}, nil
}

// ImportInvestments imports rows with columns
// symbol, name, asset_type, exchange, quantity, purchase_price, purchase_date, account_id, currency.
func (uc *ImportUseCase) ImportInvestments(ctx context.Context, src io.Reader) (*models.ImportResult, error) {
	rows, err := readRows(src)
	if err != nil {
		return nil, err
	}

	res := &models.ImportResult{Errors: []string{}, TotalRows: len(rows)}
	for i, r := range rows {
		inv, err := parseInvestmentRow(r)
		if err == nil {
			err = uc.investments.Create(ctx, inv)
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		res.Imported++
	}

	uc.finish(ctx, "investments", res)
	return res, nil
}

func parseInvestmentRow(r row) (*models.Investment, error) {
	if r.get("symbol") == "" {
		return nil, fmt.Errorf("missing symbol")
	}
	quantity, err := r.requireFloat("quantity")
	if err != nil {
		return nil, err
	}
	price, err := r.requireFloat("purchase_price")
	if err != nil {
		return nil, err
	}
	accountID, err := r.requireInt("account_id")
	if err != nil {
		return nil, err
	}

	exchange := strings.ToUpper(r.get("exchange"))
	if exchange == "" {
		exchange = "US"
	}
	currency := r.get("currency")
	if currency == "" {
		currency = "USD"
	}

	inv := &models.Investment{
		AccountID:     accountID,
		Symbol:        strings.ToUpper(r.get("symbol")),
		Name:          r.get("name"),
		AssetType:     strings.ToLower(r.get("asset_type")),
		Exchange:      exchange,
		Quantity:      quantity,
		PurchasePrice: price,
		Currency:      currency,
	}
	if raw := r.get("purchase_date"); raw != "" {
		d, ok := util.ParseTime(raw)
		if !ok {
			return nil, fmt.Errorf("invalid purchase_date %q", raw)
		}
		inv.PurchaseDate = &d
	}
	return inv, nil
}

func (uc *ImportUseCase) finish(ctx context.Context, kind string, res *models.ImportResult) {
	failed := res.TotalRows - res.Imported
	uc.log.Info("csv import finished",
		logger.String("kind", kind),
		logger.Int("imported", res.Imported),
		logger.Int("failed", failed))
	if uc.metrics != nil {
		uc.metrics.RecordImport(kind, res.Imported, failed)
	}
	if uc.events != nil {
		e := models.LedgerEvent{
			Type:       models.EventImportCompleted,
			Detail:     fmt.Sprintf("%s: %d/%d imported", kind, res.Imported, res.TotalRows),
			OccurredAt: time.Now(),
		}
		if err := uc.events.Publish(ctx, e); err != nil {
			uc.log.Warn("import event dropped", logger.Error(err))
		}
	}
}

// TransactionTemplate returns a sample transactions CSV.
func TransactionTemplate() string {
	return `date,amount,type,category,merchant,description,account_id,tags
2024-01-01,100.00,income,Salary,Employer,Monthly salary,1,
2024-01-02,50.00,expense,Groceries,Walmart,Weekly groceries,1,"food,essential"
2024-01-03,30.00,expense,Transportation,Uber,Ride to work,1,transport`
}

// AccountTemplate returns a sample accounts CSV.
func AccountTemplate() string {
	return `name,account_type,balance,currency,institution,account_number,notes
Checking Account,checking,5000.00,USD,Chase Bank,****1234,Primary account
Savings Account,savings,10000.00,USD,Chase Bank,****5678,Emergency fund
Credit Card,credit_card,-1500.00,USD,Amex,****9012,Main credit card`
}

// InvestmentTemplate returns a sample investments CSV.
func InvestmentTemplate() string {
	return `symbol,name,asset_type,exchange,quantity,purchase_price,purchase_date,account_id,currency
AAPL,Apple Inc,stock,US,10,150.00,2024-01-01,2,USD
RELIANCE,Reliance Industries,stock,NSE,50,2500.00,2024-01-01,2,INR
NIFTY,Nifty 50 ETF,etf,NSE,100,180.00,2024-01-01,2,INR`
}
