package models

// Quote is an ephemeral, normalized market quote. It is never persisted;
// Price is already resolved through the vendor fallback chain and defaults
// to 0 when the vendor had no usable price.
type Quote struct {
	Symbol    string   `json:"symbol"`
	Exchange  string   `json:"exchange"`
	Name      string   `json:"name"`
	Price     float64  `json:"current_price"`
	Currency  string   `json:"currency"`
	MarketCap *float64 `json:"market_cap,omitempty"`
	Sector    string   `json:"sector,omitempty"`
	Industry  string   `json:"industry,omitempty"`
}
