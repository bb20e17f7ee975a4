package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockDash/internal/marketdata"

	"github.com/google/uuid"
)

// FMPFetcher implements Fetcher against the Financial Modeling Prep REST API.
type FMPFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewFMPFetcher creates a new fetcher with optional proxy support.
func NewFMPFetcher(baseURL, apiKey, proxyURL string) *FMPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FMPFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *FMPFetcher) Name() string { return "fmp" }

func (f *FMPFetcher) FetchQuote(ctx context.Context, symbol string) (marketdata.QuotePayload, error) {
	endpoint := fmt.Sprintf("%s/stable/quote?symbol=%s&apikey=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(f.APIKey))
	body, err := f.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	p, err := marketdata.DecodeQuote(body)
	if err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}
	return p, nil
}

func (f *FMPFetcher) FetchHistory(ctx context.Context, symbol string) (marketdata.HistoryPayload, error) {
	endpoint := fmt.Sprintf("%s/api/v3/historical-price-full/%s?apikey=%s",
		f.BaseURL, url.PathEscape(symbol), url.QueryEscape(f.APIKey))
	body, err := f.get(ctx, endpoint)
	if err != nil {
		return marketdata.HistoryPayload{}, fmt.Errorf("fetch history: %w", err)
	}
	p, err := marketdata.DecodeHistory(body)
	if err != nil {
		return marketdata.HistoryPayload{}, fmt.Errorf("decode history: %w", err)
	}
	return p, nil
}

func (f *FMPFetcher) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrFetchFailed, resp.StatusCode, string(body))
	}
	return body, nil
}
