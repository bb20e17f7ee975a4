package collector

import (
	"context"
	"fmt"
	"time"

	"StockDash/internal/chart"
	"StockDash/internal/marketdata"
	"StockDash/internal/model"
)

// MockFetcher returns controllable fixed payloads for development and testing.
type MockFetcher struct {
	Quote      marketdata.QuotePayload
	History    marketdata.HistoryPayload
	QuoteErr   error
	HistoryErr error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuote(_ context.Context, _ string) (marketdata.QuotePayload, error) {
	if m.QuoteErr != nil {
		return nil, m.QuoteErr
	}
	return m.Quote, nil
}

func (m *MockFetcher) FetchHistory(_ context.Context, _ string) (marketdata.HistoryPayload, error) {
	if m.HistoryErr != nil {
		return marketdata.HistoryPayload{}, m.HistoryErr
	}
	return m.History, nil
}

// Collector pulls one dashboard render's worth of data: the quote, the
// historical series, and every structure derived from them. It keeps no
// state between calls, so cached and fresh payloads are interchangeable.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches the quote and history for symbol and assembles the
// dashboard snapshot. An empty quote payload is not an error: the snapshot
// carries an all-defaults record with HasQuote unset and the presentation
// layer decides what to show.
func (c *Collector) Collect(ctx context.Context, symbol string) (*model.DashboardSnapshot, error) {
	quotePayload, err := c.Fetcher.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}
	historyPayload, err := c.Fetcher.FetchHistory(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", symbol, err)
	}

	quote := marketdata.NormalizeQuote(quotePayload, symbol)
	series, err := marketdata.BuildSeries(historyPayload)
	if err != nil {
		return nil, fmt.Errorf("build series %s: %w", symbol, err)
	}
	bundle, err := chart.Assemble(series)
	if err != nil {
		return nil, fmt.Errorf("assemble chart %s: %w", symbol, err)
	}

	return &model.DashboardSnapshot{
		Symbol:    quote.Symbol,
		Quote:     quote,
		HasQuote:  len(quotePayload) > 0,
		Chart:     bundle,
		FetchedAt: time.Now(),
	}, nil
}
