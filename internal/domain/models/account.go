package models

import "time"

// AccountType is a closed set of supported account kinds.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"
	AccountInvestment AccountType = "investment"
	AccountCrypto     AccountType = "crypto"
	AccountLoan       AccountType = "loan"
	AccountOther      AccountType = "other"
)

// IsValidAccountType returns true if t is a supported account type.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCreditCard,
		AccountInvestment, AccountCrypto, AccountLoan, AccountOther:
		return true
	default:
		return false
	}
}

// IsAsset reports whether balances of this type count toward assets.
func (t AccountType) IsAsset() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountInvestment, AccountCrypto:
		return true
	default:
		return false
	}
}

// IsLiability reports whether balances of this type count toward liabilities.
// Liability balances contribute their absolute value.
func (t AccountType) IsLiability() bool {
	switch t {
	case AccountCreditCard, AccountLoan:
		return true
	default:
		return false
	}
}

// Account is a ledger account. Balance is the running sum of signed
// transaction effects; it is mutated only by transaction create/delete.
type Account struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	AccountType   AccountType `json:"account_type"`
	Balance       float64     `json:"balance"`
	Currency      string      `json:"currency"`
	Institution   string      `json:"institution,omitempty"`
	AccountNumber string      `json:"account_number,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
