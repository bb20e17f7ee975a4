package collector

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"StockDash/internal/cache"
	"StockDash/internal/marketdata"
)

// Freshness windows matching the upstream API's practical update rates: the
// quote moves intraday, the daily history only changes once per session.
const (
	DefaultQuoteTTL   = 60 * time.Second
	DefaultHistoryTTL = 300 * time.Second
)

// CachedFetcher wraps another Fetcher with a TTL cache so repeated dashboard
// renders inside the freshness window reuse the upstream response.
type CachedFetcher struct {
	Inner      Fetcher
	Cache      cache.Cache
	QuoteTTL   time.Duration
	HistoryTTL time.Duration
}

// NewCachedFetcher creates a caching wrapper; non-positive TTLs fall back to
// the defaults.
func NewCachedFetcher(inner Fetcher, c cache.Cache, quoteTTL, historyTTL time.Duration) *CachedFetcher {
	if quoteTTL <= 0 {
		quoteTTL = DefaultQuoteTTL
	}
	if historyTTL <= 0 {
		historyTTL = DefaultHistoryTTL
	}
	return &CachedFetcher{Inner: inner, Cache: c, QuoteTTL: quoteTTL, HistoryTTL: historyTTL}
}

func (f *CachedFetcher) Name() string { return f.Inner.Name() + "+cache" }

func (f *CachedFetcher) FetchQuote(ctx context.Context, symbol string) (marketdata.QuotePayload, error) {
	key := "quote:" + symbol
	if b, ok := f.Cache.Get(key); ok {
		if p, err := marketdata.DecodeQuote(b); err == nil {
			return p, nil
		}
		log.Printf("[WARN] discarding corrupt cache entry %s", key)
	}
	p, err := f.Inner.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	f.store(key, p, f.QuoteTTL)
	return p, nil
}

func (f *CachedFetcher) FetchHistory(ctx context.Context, symbol string) (marketdata.HistoryPayload, error) {
	key := "history:" + symbol
	if b, ok := f.Cache.Get(key); ok {
		if p, err := marketdata.DecodeHistory(b); err == nil {
			return p, nil
		}
		log.Printf("[WARN] discarding corrupt cache entry %s", key)
	}
	p, err := f.Inner.FetchHistory(ctx, symbol)
	if err != nil {
		return marketdata.HistoryPayload{}, err
	}
	f.store(key, p, f.HistoryTTL)
	return p, nil
}

func (f *CachedFetcher) store(key string, payload any, ttl time.Duration) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[WARN] cache marshal %s: %v", key, err)
		return
	}
	if err := f.Cache.Set(key, b, ttl); err != nil {
		log.Printf("[WARN] cache set %s: %v", key, err)
	}
}
