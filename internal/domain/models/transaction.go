package models

import "time"

// TransactionType is a closed set of transaction kinds. Amount is always a
// non-negative magnitude; the sign of the balance effect is implied by type.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// IsValidTransactionType returns true if t is a supported transaction type.
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	default:
		return false
	}
}

// BalanceEffect returns the signed effect of a transaction of this type and
// magnitude on its owning account balance. Transfers do not move the balance.
func (t TransactionType) BalanceEffect(amount float64) float64 {
	switch t {
	case TransactionIncome:
		return amount
	case TransactionExpense:
		return -amount
	default:
		return 0
	}
}

// Transaction belongs to exactly one account. Deleting it must reverse its
// balance effect exactly.
type Transaction struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"account_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          float64         `json:"amount"`
	Category        string          `json:"category,omitempty"`
	Merchant        string          `json:"merchant,omitempty"`
	Description     string          `json:"description,omitempty"`
	Tags            []string        `json:"tags"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TransactionFilter narrows transaction listings. Zero values mean "no filter".
type TransactionFilter struct {
	AccountID       int64
	Category        string
	TransactionType TransactionType
	StartDate       time.Time
	EndDate         time.Time
	Limit           int
	Offset          int
}
