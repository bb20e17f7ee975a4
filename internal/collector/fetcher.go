package collector

import (
	"context"
	"errors"

	"StockDash/internal/marketdata"
)

// ErrFetchFailed marks upstream transport or status failures. It is distinct
// from a well-formed response that simply carries no history, so callers can
// tell "the API is down" apart from "this symbol has no data".
var ErrFetchFailed = errors.New("fetch failed")

// Fetcher retrieves raw API payloads for one symbol.
type Fetcher interface {
	FetchQuote(ctx context.Context, symbol string) (marketdata.QuotePayload, error)
	FetchHistory(ctx context.Context, symbol string) (marketdata.HistoryPayload, error)
	Name() string
}
