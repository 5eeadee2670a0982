package models

import "time"

// Ledger event types published to the optional event stream.
const (
	EventTransactionCreated = "transaction.created"
	EventTransactionDeleted = "transaction.deleted"
	EventImportCompleted    = "import.completed"
)

// LedgerEvent describes a balance-affecting change. Publishing is
// fire-and-forget: consumers get an audit trail, not a source of truth.
type LedgerEvent struct {
	Type          string    `json:"type"`
	AccountID     int64     `json:"account_id,omitempty"`
	TransactionID int64     `json:"transaction_id,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	BalanceEffect float64   `json:"balance_effect,omitempty"`
	Detail        string    `json:"detail,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
