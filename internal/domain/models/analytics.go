package models

import "time"

// NetWorth is the asset/liability breakdown across accounts and holdings.
type NetWorth struct {
	NetWorth         float64   `json:"net_worth"`
	TotalAssets      float64   `json:"total_assets"`
	TotalLiabilities float64   `json:"total_liabilities"`
	Timestamp        time.Time `json:"timestamp"`
}

// CashFlow sums income against expenses inside an inclusive window.
type CashFlow struct {
	TotalIncome   float64   `json:"total_income"`
	TotalExpenses float64   `json:"total_expenses"`
	NetCashFlow   float64   `json:"net_cash_flow"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}

// CategorySpend is one category's share of the spending breakdown.
type CategorySpend struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SpendingBreakdown groups expense transactions by category, largest first.
type SpendingBreakdown struct {
	Categories    []CategorySpend `json:"categories"`
	TotalSpending float64         `json:"total_spending"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
}

// TrendBucket is one calendar month of income vs expenses.
type TrendBucket struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// MonthlyTrend is the income-vs-expenses trend over a trailing window.
type MonthlyTrend struct {
	Trend  []TrendBucket `json:"trend"`
	Months int           `json:"months"`
}

// AccountBalance is one row of the account-balances listing.
type AccountBalance struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Balance  float64     `json:"balance"`
	Currency string      `json:"currency"`
}

// DashboardSummary composes the month-to-date dashboard view.
type DashboardSummary struct {
	NetWorth                     NetWorth          `json:"net_worth"`
	CurrentMonthCashFlow         CashFlow          `json:"current_month_cash_flow"`
	CurrentMonthSpending         SpendingBreakdown `json:"current_month_spending"`
	AccountCount                 int64             `json:"account_count"`
	CurrentMonthTransactionCount int64             `json:"current_month_transaction_count"`
	Timestamp                    time.Time         `json:"timestamp"`
}
