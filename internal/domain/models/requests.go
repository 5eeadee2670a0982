package models

import "time"

// Requests for ledger HTTP endpoints. Defined in domain for consistency and reuse.

type AccountCreateRequest struct {
	Name          string  `json:"name" validate:"required"`
	AccountType   string  `json:"account_type" validate:"required,oneof=checking savings credit_card investment crypto loan other"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency" default:"USD"`
	Institution   string  `json:"institution"`
	AccountNumber string  `json:"account_number"`
	Notes         string  `json:"notes"`
}

type AccountUpdateRequest struct {
	Name          *string  `json:"name"`
	Balance       *float64 `json:"balance"`
	Institution   *string  `json:"institution"`
	AccountNumber *string  `json:"account_number"`
	Notes         *string  `json:"notes"`
	IsActive      *bool    `json:"is_active"`
}

type TransactionCreateRequest struct {
	AccountID       int64     `json:"account_id" validate:"required"`
	TransactionType string    `json:"transaction_type" validate:"required,oneof=income expense transfer"`
	Amount          float64   `json:"amount" validate:"gte=0"`
	Category        string    `json:"category"`
	Merchant        string    `json:"merchant"`
	Description     string    `json:"description"`
	Tags            []string  `json:"tags"`
	TransactionDate time.Time `json:"transaction_date" validate:"required"`
}

type TransactionUpdateRequest struct {
	Amount          *float64   `json:"amount" validate:"omitempty,gte=0"`
	Category        *string    `json:"category"`
	Merchant        *string    `json:"merchant"`
	Description     *string    `json:"description"`
	Tags            *[]string  `json:"tags"`
	TransactionDate *time.Time `json:"transaction_date"`
}

type TransactionListRequest struct {
	AccountID       int64  `query:"account_id" json:"account_id"`
	Category        string `query:"category" json:"category"`
	TransactionType string `query:"transaction_type" json:"transaction_type" validate:"omitempty,oneof=income expense transfer"`
	StartDate       string `query:"start_date" json:"start_date"`
	EndDate         string `query:"end_date" json:"end_date"`
	Limit           int    `query:"limit" json:"limit" default:"100" validate:"gte=1,lte=1000"`
	Offset          int    `query:"offset" json:"offset" validate:"gte=0"`
}

type BudgetCreateRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Period   string  `json:"period" default:"monthly"`
}

type BudgetUpdateRequest struct {
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Period *string  `json:"period"`
}

type InvestmentCreateRequest struct {
	AccountID     int64      `json:"account_id" validate:"required"`
	Symbol        string     `json:"symbol" validate:"required"`
	Name          string     `json:"name"`
	AssetType     string     `json:"asset_type" validate:"required,oneof=stock etf mutual_fund crypto"`
	Exchange      string     `json:"exchange" default:"US"`
	Quantity      float64    `json:"quantity" validate:"required,gt=0"`
	PurchasePrice float64    `json:"purchase_price" validate:"gte=0"`
	Currency      string     `json:"currency" default:"USD"`
	PurchaseDate  *time.Time `json:"purchase_date"`
}

type InvestmentUpdateRequest struct {
	Quantity      *float64 `json:"quantity" validate:"omitempty,gt=0"`
	PurchasePrice *float64 `json:"purchase_price" validate:"omitempty,gte=0"`
	Name          *string  `json:"name"`
}

type CashFlowRequest struct {
	StartDate string `query:"start_date" json:"start_date"`
	EndDate   string `query:"end_date" json:"end_date"`
}

type TrendRequest struct {
	Months int `query:"months" json:"months" default:"6"`
}
