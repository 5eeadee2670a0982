package yahoo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	pkghttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
)

// Client implements a PriceSource backed by a Yahoo Finance style quote API.
type Client struct {
	baseURL string
	http    *pkghttp.Client
}

// New creates a new quote API client.
func New(baseURL string, timeout time.Duration) drepo.PriceSource {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    pkghttp.NewClient(pkghttp.WithTimeout(timeout)),
	}
}

// TickerSymbol formats a ticker for the vendor based on exchange. Indian
// listings carry the vendor's .NS/.BO suffixes; everything else passes
// through unchanged.
func TickerSymbol(symbol, exchange string) string {
	switch strings.ToUpper(exchange) {
	case "NSE", "INDIA":
		return symbol + ".NS"
	case "BSE":
		return symbol + ".BO"
	default:
		return symbol
	}
}

// tickerInfo is the vendor payload. Every field may be absent.
type tickerInfo struct {
	CurrentPrice       *float64 `json:"currentPrice"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	PreviousClose      *float64 `json:"previousClose"`
	LongName           *string  `json:"longName"`
	ShortName          *string  `json:"shortName"`
	Currency           *string  `json:"currency"`
	MarketCap          *float64 `json:"marketCap"`
	Sector             *string  `json:"sector"`
	Industry           *string  `json:"industry"`
	Exchange           *string  `json:"exchange"`
}

// price walks the vendor's fallback chain and returns 0 when every field
// is absent.
func (t tickerInfo) price() float64 {
	for _, p := range []*float64{t.CurrentPrice, t.RegularMarketPrice, t.PreviousClose} {
		if p != nil {
			return *p
		}
	}
	return 0
}

func (t tickerInfo) name(fallback string) string {
	if t.LongName != nil && *t.LongName != "" {
		return *t.LongName
	}
	if t.ShortName != nil && *t.ShortName != "" {
		return *t.ShortName
	}
	return fallback
}

func (t tickerInfo) currency() string {
	if t.Currency != nil && *t.Currency != "" {
		return *t.Currency
	}
	return "USD"
}

func (c *Client) fetchInfo(ctx context.Context, ticker string) (*tickerInfo, error) {
	var info tickerInfo
	err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method: pkghttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/quoteSummary/%s", c.baseURL, ticker),
	}, &info)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", ticker, err)
	}
	return &info, nil
}

func (c *Client) FetchQuote(ctx context.Context, symbol, exchange string) (*models.Quote, error) {
	info, err := c.fetchInfo(ctx, TickerSymbol(symbol, exchange))
	if err != nil {
		return nil, err
	}

	q := &models.Quote{
		Symbol:    symbol,
		Exchange:  exchange,
		Name:      info.name(symbol),
		Price:     info.price(),
		Currency:  info.currency(),
		MarketCap: info.MarketCap,
	}
	if info.Sector != nil {
		q.Sector = *info.Sector
	}
	if info.Industry != nil {
		q.Industry = *info.Industry
	}
	return q, nil
}

func (c *Client) SearchTicker(ctx context.Context, query string) (*models.Quote, error) {
	info, err := c.fetchInfo(ctx, query)
	if err != nil {
		return nil, err
	}

	exchange := "US"
	if info.Exchange != nil && *info.Exchange != "" {
		exchange = *info.Exchange
	}
	return &models.Quote{
		Symbol:    query,
		Exchange:  exchange,
		Name:      info.name(query),
		Price:     info.price(),
		Currency:  info.currency(),
		MarketCap: info.MarketCap,
	}, nil
}
