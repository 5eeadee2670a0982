package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	drepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/cache"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
)

// PriceRequest names one listing to price.
type PriceRequest struct {
	Symbol   string
	Exchange string
}

// Key returns the "symbol:exchange" result key.
func (r PriceRequest) Key() string { return r.Symbol + ":" + r.Exchange }

// PriceFetcherOption configures PriceFetcher.
type PriceFetcherOption func(*PriceFetcher)

// PriceFetcher fans out batch price lookups against a PriceSource. Failures
// never propagate: a lookup that errors or times out yields price 0.0 so one
// bad listing cannot sink a portfolio valuation.
type PriceFetcher struct {
	source         drepo.PriceSource
	cache          cache.Service
	metrics        drepo.Metrics
	log            *logger.Logger
	maxConcurrency int
	lookupTimeout  time.Duration
	quoteTTL       time.Duration
}

// NewPriceFetcher creates a batch price fetcher.
func NewPriceFetcher(source drepo.PriceSource, log *logger.Logger, opts ...PriceFetcherOption) *PriceFetcher {
	pf := &PriceFetcher{
		source:         source,
		log:            log.With("prices"),
		maxConcurrency: 16,
		lookupTimeout:  10 * time.Second,
		quoteTTL:       time.Minute,
	}
	for _, opt := range opts {
		opt(pf)
	}
	return pf
}

// WithQuoteCache sets the quote cache layer.
func WithQuoteCache(c cache.Service, ttl time.Duration) PriceFetcherOption {
	return func(pf *PriceFetcher) {
		pf.cache = c
		if ttl > 0 {
			pf.quoteTTL = ttl
		}
	}
}

// WithPriceMetrics sets the metrics recorder.
func WithPriceMetrics(m drepo.Metrics) PriceFetcherOption {
	return func(pf *PriceFetcher) {
		pf.metrics = m
	}
}

// WithConcurrency bounds simultaneous vendor lookups.
func WithConcurrency(n int) PriceFetcherOption {
	return func(pf *PriceFetcher) {
		if n > 0 {
			pf.maxConcurrency = n
		}
	}
}

// WithLookupTimeout bounds each individual vendor lookup.
func WithLookupTimeout(d time.Duration) PriceFetcherOption {
	return func(pf *PriceFetcher) {
		if d > 0 {
			pf.lookupTimeout = d
		}
	}
}

// FetchPrices resolves prices for all requested listings concurrently. The
// result always holds exactly one entry per distinct key; failed lookups
// carry 0.0.
func (pf *PriceFetcher) FetchPrices(ctx context.Context, reqs []PriceRequest) map[string]float64 {
	prices := make(map[string]float64, len(reqs))
	if len(reqs) == 0 {
		return prices
	}

	// Collapse duplicate listings so each is fetched once.
	distinct := make([]PriceRequest, 0, len(reqs))
	seen := make(map[string]struct{}, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.Key()]; ok {
			continue
		}
		seen[r.Key()] = struct{}{}
		distinct = append(distinct, r)
	}

	type item struct {
		key   string
		price float64
	}
	ch := make(chan item, len(distinct))
	sem := make(chan struct{}, pf.maxConcurrency)
	var wg sync.WaitGroup

	for _, r := range distinct {
		wg.Add(1)
		go func(r PriceRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			ch <- item{key: r.Key(), price: pf.fetchOne(ctx, r)}
		}(r)
	}

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		prices[it.key] = it.price
	}
	return prices
}

// fetchOne resolves a single price, absorbing any failure into 0.0.
func (pf *PriceFetcher) fetchOne(ctx context.Context, r PriceRequest) float64 {
	q, err := pf.Quote(ctx, r.Symbol, r.Exchange)
	if err != nil {
		pf.log.Warn("price lookup failed",
			logger.String("symbol", r.Symbol),
			logger.String("exchange", r.Exchange),
			logger.Error(err))
		if pf.metrics != nil {
			pf.metrics.RecordPriceFetch("defaulted")
		}
		return 0
	}
	return q.Price
}

// Quote resolves one quote through the cache, falling back to the vendor
// under the per-lookup timeout.
func (pf *PriceFetcher) Quote(ctx context.Context, symbol, exchange string) (*models.Quote, error) {
	key := fmt.Sprintf("quote:%s:%s", symbol, exchange)

	if pf.cache != nil {
		var cached models.Quote
		if err := pf.cache.Get(ctx, key, &cached); err == nil {
			if pf.metrics != nil {
				pf.metrics.RecordPriceFetch("cached")
			}
			return &cached, nil
		}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, pf.lookupTimeout)
	defer cancel()

	start := time.Now()
	q, err := pf.source.FetchQuote(lookupCtx, symbol, exchange)
	if pf.metrics != nil {
		pf.metrics.RecordLatency("price_fetch", time.Since(start).Seconds())
	}
	if err != nil {
		return nil, err
	}

	if pf.metrics != nil {
		pf.metrics.RecordPriceFetch("ok")
		pf.metrics.RecordLastPrice(symbol, q.Price)
	}
	if pf.cache != nil {
		_ = pf.cache.Set(ctx, key, q, pf.quoteTTL)
	}
	return q, nil
}

// Search looks up a ticker by symbol or name via the vendor.
func (pf *PriceFetcher) Search(ctx context.Context, query string) (*models.Quote, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, pf.lookupTimeout)
	defer cancel()
	return pf.source.SearchTicker(lookupCtx, query)
}
