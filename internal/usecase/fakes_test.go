package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

type fakeAccountStore struct {
	mu       sync.Mutex
	accounts map[int64]*models.Account
	nextID   int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[int64]*models.Account)}
}

func (s *fakeAccountStore) Create(_ context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	s.accounts[a.ID] = &cp
	return nil
}

func (s *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *fakeAccountStore) List(_ context.Context, activeOnly bool) ([]*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if activeOnly && !a.IsActive {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeAccountStore) Update(_ context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ID]; !ok {
		return models.ErrAccountNotFound
	}
	cp := *a
	s.accounts[a.ID] = &cp
	return nil
}

func (s *fakeAccountStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return models.ErrAccountNotFound
	}
	delete(s.accounts, id)
	return nil
}

func (s *fakeAccountStore) CountActive(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, a := range s.accounts {
		if a.IsActive {
			n++
		}
	}
	return n, nil
}

func (s *fakeAccountStore) balance(id int64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id].Balance
}

type fakeTransactionStore struct {
	mu           sync.Mutex
	transactions map[int64]*models.Transaction
	accounts     *fakeAccountStore
	nextID       int64
}

func newFakeTransactionStore(accounts *fakeAccountStore) *fakeTransactionStore {
	return &fakeTransactionStore{
		transactions: make(map[int64]*models.Transaction),
		accounts:     accounts,
	}
}

func (s *fakeTransactionStore) Create(ctx context.Context, t *models.Transaction) error {
	if s.accounts != nil {
		a, err := s.accounts.GetByID(ctx, t.AccountID)
		if err != nil {
			return err
		}
		a.Balance += t.TransactionType.BalanceEffect(t.Amount)
		if err := s.accounts.Update(ctx, a); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t.ID = s.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	s.transactions[t.ID] = &cp
	return nil
}

func (s *fakeTransactionStore) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, models.ErrTransactionNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTransactionStore) List(_ context.Context, f models.TransactionFilter) ([]*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Transaction, 0)
	for _, t := range s.transactions {
		if f.AccountID != 0 && t.AccountID != f.AccountID {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.TransactionType != "" && t.TransactionType != f.TransactionType {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionDate.After(out[j].TransactionDate)
	})
	return out, nil
}

func (s *fakeTransactionStore) Update(_ context.Context, t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[t.ID]; !ok {
		return models.ErrTransactionNotFound
	}
	cp := *t
	s.transactions[t.ID] = &cp
	return nil
}

func (s *fakeTransactionStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	t, ok := s.transactions[id]
	if !ok {
		s.mu.Unlock()
		return models.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	s.mu.Unlock()

	if s.accounts != nil {
		a, err := s.accounts.GetByID(ctx, t.AccountID)
		if err == nil {
			a.Balance -= t.TransactionType.BalanceEffect(t.Amount)
			_ = s.accounts.Update(ctx, a)
		}
	}
	return nil
}

func (s *fakeTransactionStore) Categories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	for _, t := range s.transactions {
		if t.Category != "" {
			seen[t.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (s *fakeTransactionStore) SumByType(_ context.Context, typ models.TransactionType, from, to time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, t := range s.transactions {
		if t.TransactionType == typ && !t.TransactionDate.Before(from) && !t.TransactionDate.After(to) {
			sum += t.Amount
		}
	}
	return sum, nil
}

func (s *fakeTransactionStore) SumCategorySince(_ context.Context, category string, typ models.TransactionType, since time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, t := range s.transactions {
		if t.Category == category && t.TransactionType == typ && !t.TransactionDate.Before(since) {
			sum += t.Amount
		}
	}
	return sum, nil
}

func (s *fakeTransactionStore) SpendingByCategory(_ context.Context, from, to time.Time) ([]models.CategorySpend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sums := make(map[string]float64)
	for _, t := range s.transactions {
		if t.TransactionType != models.TransactionExpense {
			continue
		}
		if t.TransactionDate.Before(from) || t.TransactionDate.After(to) {
			continue
		}
		if t.Category == "" {
			continue
		}
		sums[t.Category] += t.Amount
	}
	out := make([]models.CategorySpend, 0, len(sums))
	for c, amount := range sums {
		out = append(out, models.CategorySpend{Category: c, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out, nil
}

func (s *fakeTransactionStore) ListBetween(_ context.Context, from, to time.Time) ([]*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Transaction, 0)
	for _, t := range s.transactions {
		if t.TransactionDate.Before(from) || t.TransactionDate.After(to) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionDate.Before(out[j].TransactionDate)
	})
	return out, nil
}

func (s *fakeTransactionStore) CountSince(_ context.Context, since time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, t := range s.transactions {
		if !t.TransactionDate.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeBudgetStore struct {
	mu      sync.Mutex
	budgets map[int64]*models.Budget
	nextID  int64
}

func newFakeBudgetStore() *fakeBudgetStore {
	return &fakeBudgetStore{budgets: make(map[int64]*models.Budget)}
}

func (s *fakeBudgetStore) Create(_ context.Context, b *models.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.budgets {
		if existing.Category == b.Category {
			return models.ErrDuplicateCategory
		}
	}
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	s.budgets[b.ID] = &cp
	return nil
}

func (s *fakeBudgetStore) GetByID(_ context.Context, id int64) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.budgets[id]
	if !ok {
		return nil, models.ErrBudgetNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *fakeBudgetStore) List(_ context.Context) ([]*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeBudgetStore) Update(_ context.Context, b *models.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[b.ID]; !ok {
		return models.ErrBudgetNotFound
	}
	cp := *b
	s.budgets[b.ID] = &cp
	return nil
}

func (s *fakeBudgetStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[id]; !ok {
		return models.ErrBudgetNotFound
	}
	delete(s.budgets, id)
	return nil
}

func (s *fakeBudgetStore) UpdateSpent(_ context.Context, id int64, spent float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.budgets[id]; ok {
		b.Spent = spent
	}
	return nil
}

type fakeInvestmentStore struct {
	mu          sync.Mutex
	investments map[int64]*models.Investment
	nextID      int64
}

func newFakeInvestmentStore() *fakeInvestmentStore {
	return &fakeInvestmentStore{investments: make(map[int64]*models.Investment)}
}

func (s *fakeInvestmentStore) Create(_ context.Context, inv *models.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	inv.ID = s.nextID
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = inv.CreatedAt
	cp := *inv
	s.investments[inv.ID] = &cp
	return nil
}

func (s *fakeInvestmentStore) GetByID(_ context.Context, id int64) (*models.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.investments[id]
	if !ok {
		return nil, models.ErrInvestmentNotFound
	}
	cp := *inv
	return &cp, nil
}

func (s *fakeInvestmentStore) List(_ context.Context, accountID int64) ([]*models.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Investment, 0, len(s.investments))
	for _, inv := range s.investments {
		if accountID != 0 && inv.AccountID != accountID {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeInvestmentStore) Update(_ context.Context, inv *models.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investments[inv.ID]; !ok {
		return models.ErrInvestmentNotFound
	}
	cp := *inv
	s.investments[inv.ID] = &cp
	return nil
}

func (s *fakeInvestmentStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investments[id]; !ok {
		return models.ErrInvestmentNotFound
	}
	delete(s.investments, id)
	return nil
}

func (s *fakeInvestmentStore) UpdatePrice(_ context.Context, id int64, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv, ok := s.investments[id]; ok {
		inv.CurrentPrice = price
	}
	return nil
}

// fakePriceSource scripts vendor behavior per symbol. Lookups count calls so
// tests can assert the vendor was or was not consulted.
type fakePriceSource struct {
	mu     sync.Mutex
	quotes map[string]*models.Quote
	errs   map[string]error
	calls  int
}

func newFakePriceSource() *fakePriceSource {
	return &fakePriceSource{
		quotes: make(map[string]*models.Quote),
		errs:   make(map[string]error),
	}
}

func (s *fakePriceSource) FetchQuote(_ context.Context, symbol, exchange string) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err, ok := s.errs[symbol]; ok {
		return nil, err
	}
	if q, ok := s.quotes[symbol]; ok {
		cp := *q
		return &cp, nil
	}
	return &models.Quote{Symbol: symbol, Exchange: exchange, Name: symbol, Currency: "USD"}, nil
}

func (s *fakePriceSource) SearchTicker(_ context.Context, query string) (*models.Quote, error) {
	return s.FetchQuote(context.Background(), query, "US")
}

func (s *fakePriceSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeEvents struct {
	mu     sync.Mutex
	events []models.LedgerEvent
}

func (e *fakeEvents) Publish(_ context.Context, ev models.LedgerEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
	return nil
}

func (e *fakeEvents) Close() error { return nil }

func (e *fakeEvents) published() []models.LedgerEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.LedgerEvent, len(e.events))
	copy(out, e.events)
	return out
}
