package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/cache"
)

func TestFetchPricesIsolatesFailures(t *testing.T) {
	source := newFakePriceSource()
	source.quotes["AAPL"] = &models.Quote{Symbol: "AAPL", Price: 150}
	source.quotes["MSFT"] = &models.Quote{Symbol: "MSFT", Price: 300}
	source.errs["DEAD"] = errors.New("upstream down")

	pf := NewPriceFetcher(source, newTestLogger(t))

	prices := pf.FetchPrices(context.Background(), []PriceRequest{
		{Symbol: "AAPL", Exchange: "US"},
		{Symbol: "DEAD", Exchange: "US"},
		{Symbol: "MSFT", Exchange: "US"},
	})

	if len(prices) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(prices))
	}
	if prices["AAPL:US"] != 150 {
		t.Fatalf("AAPL price = %v, want 150", prices["AAPL:US"])
	}
	if prices["MSFT:US"] != 300 {
		t.Fatalf("MSFT price = %v, want 300", prices["MSFT:US"])
	}
	if prices["DEAD:US"] != 0 {
		t.Fatalf("failed lookup price = %v, want 0", prices["DEAD:US"])
	}
}

func TestFetchPricesDeduplicates(t *testing.T) {
	source := newFakePriceSource()
	source.quotes["AAPL"] = &models.Quote{Symbol: "AAPL", Price: 150}

	pf := NewPriceFetcher(source, newTestLogger(t))

	prices := pf.FetchPrices(context.Background(), []PriceRequest{
		{Symbol: "AAPL", Exchange: "US"},
		{Symbol: "AAPL", Exchange: "US"},
		{Symbol: "AAPL", Exchange: "US"},
	})

	if len(prices) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(prices))
	}
	if got := source.callCount(); got != 1 {
		t.Fatalf("vendor called %d times, want 1", got)
	}
}

func TestFetchPricesEmpty(t *testing.T) {
	pf := NewPriceFetcher(newFakePriceSource(), newTestLogger(t))
	prices := pf.FetchPrices(context.Background(), nil)
	if len(prices) != 0 {
		t.Fatalf("expected no entries, got %d", len(prices))
	}
}

func TestQuoteServedFromCache(t *testing.T) {
	source := newFakePriceSource()
	source.quotes["AAPL"] = &models.Quote{Symbol: "AAPL", Price: 150}

	mem := cache.NewMemoryCache(cache.WithMemoryMaxSize(16))
	defer mem.Close()

	pf := NewPriceFetcher(source, newTestLogger(t), WithQuoteCache(mem, time.Minute))

	for i := 0; i < 3; i++ {
		q, err := pf.Quote(context.Background(), "AAPL", "US")
		if err != nil {
			t.Fatalf("quote %d: %v", i, err)
		}
		if q.Price != 150 {
			t.Fatalf("quote %d price = %v, want 150", i, q.Price)
		}
	}

	if got := source.callCount(); got != 1 {
		t.Fatalf("vendor called %d times, want 1", got)
	}
}

func TestQuoteVendorErrorPropagates(t *testing.T) {
	source := newFakePriceSource()
	source.errs["DEAD"] = errors.New("upstream down")

	pf := NewPriceFetcher(source, newTestLogger(t))

	if _, err := pf.Quote(context.Background(), "DEAD", "US"); err == nil {
		t.Fatal("expected error from vendor")
	}
}
