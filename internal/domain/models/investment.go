package models

import "time"

// Investment is a single holding. CurrentPrice is the last observed market
// price and may be stale between refreshes.
type Investment struct {
	ID            int64      `json:"id"`
	AccountID     int64      `json:"account_id"`
	Symbol        string     `json:"symbol"`
	Name          string     `json:"name,omitempty"`
	AssetType     string     `json:"asset_type"`
	Exchange      string     `json:"exchange"`
	Quantity      float64    `json:"quantity"`
	PurchasePrice float64    `json:"purchase_price"`
	CurrentPrice  float64    `json:"current_price"`
	Currency      string     `json:"currency"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PriceKey returns the "symbol:exchange" key used by batch price lookups.
func (i Investment) PriceKey() string { return i.Symbol + ":" + i.Exchange }

// CostBasis is quantity times purchase price.
func (i Investment) CostBasis() float64 { return i.Quantity * i.PurchasePrice }

// CurrentValue is quantity times the last observed price.
func (i Investment) CurrentValue() float64 { return i.Quantity * i.CurrentPrice }

// GainLoss is current value minus cost basis.
func (i Investment) GainLoss() float64 { return i.CurrentValue() - i.CostBasis() }

// GainLossPercent is gain/loss relative to cost basis, 0 when the basis is 0.
func (i Investment) GainLossPercent() float64 {
	basis := i.CostBasis()
	if basis <= 0 {
		return 0
	}
	return i.GainLoss() / basis * 100
}

// InvestmentView is the API shape of a holding with derived valuation fields.
type InvestmentView struct {
	Investment
	CostBasis          float64 `json:"cost_basis"`
	CurrentValue       float64 `json:"current_value"`
	GainLoss           float64 `json:"gain_loss"`
	GainLossPercentage float64 `json:"gain_loss_percentage"`
}

// View computes the derived valuation fields.
func (i Investment) View() InvestmentView {
	return InvestmentView{
		Investment:         i,
		CostBasis:          i.CostBasis(),
		CurrentValue:       i.CurrentValue(),
		GainLoss:           i.GainLoss(),
		GainLossPercentage: i.GainLossPercent(),
	}
}

// PortfolioSummary aggregates valuation across all holdings.
type PortfolioSummary struct {
	TotalValue              float64 `json:"total_value"`
	TotalCost               float64 `json:"total_cost"`
	TotalGainLoss           float64 `json:"total_gain_loss"`
	TotalGainLossPercentage float64 `json:"total_gain_loss_percentage"`
	HoldingsCount           int     `json:"holdings_count"`
}
