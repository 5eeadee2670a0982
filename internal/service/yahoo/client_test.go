package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTickerSymbol(t *testing.T) {
	cases := []struct {
		symbol   string
		exchange string
		want     string
	}{
		{"AAPL", "US", "AAPL"},
		{"RELIANCE", "NSE", "RELIANCE.NS"},
		{"RELIANCE", "nse", "RELIANCE.NS"},
		{"INFY", "INDIA", "INFY.NS"},
		{"TATASTEEL", "BSE", "TATASTEEL.BO"},
		{"TATASTEEL", "bse", "TATASTEEL.BO"},
		{"VTI", "NYSE", "VTI"},
		{"BTC-USD", "", "BTC-USD"},
	}
	for _, tc := range cases {
		if got := TickerSymbol(tc.symbol, tc.exchange); got != tc.want {
			t.Fatalf("TickerSymbol(%q, %q) = %q, want %q", tc.symbol, tc.exchange, got, tc.want)
		}
	}
}

func TestFetchQuotePriceFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		body string
		want float64
	}{
		{"current price wins", `{"currentPrice": 101.5, "regularMarketPrice": 100, "previousClose": 99}`, 101.5},
		{"regular market price second", `{"regularMarketPrice": 100, "previousClose": 99}`, 100},
		{"previous close last", `{"previousClose": 99}`, 99},
		{"all absent defaults to zero", `{}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := New(srv.URL, time.Second)
			q, err := client.FetchQuote(context.Background(), "AAPL", "US")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Price != tc.want {
				t.Fatalf("price = %v, want %v", q.Price, tc.want)
			}
		})
	}
}

func TestFetchQuoteNameFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shortName": "Apple", "previousClose": 99}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	q, err := client.FetchQuote(context.Background(), "AAPL", "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Name != "Apple" {
		t.Fatalf("name = %q, want Apple", q.Name)
	}
	if q.Currency != "USD" {
		t.Fatalf("currency = %q, want USD", q.Currency)
	}
}

func TestFetchQuoteNameFallsBackToSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	q, err := client.FetchQuote(context.Background(), "MYSTERY", "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Name != "MYSTERY" {
		t.Fatalf("name = %q, want MYSTERY", q.Name)
	}
}

func TestFetchQuoteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.FetchQuote(context.Background(), "AAPL", "US"); err == nil {
		t.Fatalf("expected error on upstream 502")
	}
}

func TestSearchTickerDefaultsExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"longName": "Vanguard Total Stock Market ETF", "regularMarketPrice": 260.1}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	q, err := client.SearchTicker(context.Background(), "VTI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Exchange != "US" {
		t.Fatalf("exchange = %q, want US", q.Exchange)
	}
	if q.Name != "Vanguard Total Stock Market ETF" {
		t.Fatalf("name = %q", q.Name)
	}
}
