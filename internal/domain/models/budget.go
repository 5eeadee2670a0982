package models

import "time"

// BudgetPeriod tags the window over which a budget's spend is computed.
// Values other than monthly/yearly fall back to a trailing 30-day window.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget limits spending for one category. Category is unique across budgets.
// Spent is derived: it is recomputed against the ledger on every read and the
// stored value is only a snapshot as-of-last-read.
type Budget struct {
	ID        int64        `json:"id"`
	Category  string       `json:"category"`
	Amount    float64      `json:"amount"`
	Period    BudgetPeriod `json:"period"`
	Spent     float64      `json:"spent"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// BudgetView is the API shape of a budget with derived consumption fields.
type BudgetView struct {
	Budget
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
}

// View computes the derived fields from the current snapshot.
func (b Budget) View() BudgetView {
	v := BudgetView{Budget: b, Remaining: b.Amount - b.Spent}
	if b.Amount > 0 {
		v.PercentageUsed = b.Spent / b.Amount * 100
	}
	return v
}
