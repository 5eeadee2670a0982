package models

import "errors"

// Sentinel errors surfaced to API callers. External market-data failures are
// never represented here; they are absorbed into defaulted values upstream.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvestmentNotFound  = errors.New("investment not found")
	ErrDuplicateCategory   = errors.New("budget for this category already exists")
)
