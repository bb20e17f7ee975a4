package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFMPFetcher_FetchQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stable/quote" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("expected symbol AAPL, got %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("expected apikey test-key, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected a request id header")
		}
		w.Write([]byte(`[{"symbol":"AAPL","price":230.5,"volume":100}]`))
	}))
	defer srv.Close()

	f := NewFMPFetcher(srv.URL, "test-key", "")
	p, err := f.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(p))
	}
}

func TestFMPFetcher_FetchHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/historical-price-full/AAPL" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"symbol":"AAPL","historical":[
			{"date":"2024-01-01","open":1,"high":2,"low":0.5,"close":1.5,"volume":10}
		]}`))
	}))
	defer srv.Close()

	f := NewFMPFetcher(srv.URL, "test-key", "")
	p, err := f.FetchHistory(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %q", p.Symbol)
	}
	if len(p.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(p.Records))
	}
}

func TestFMPFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "limit reached", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewFMPFetcher(srv.URL, "test-key", "")
	if _, err := f.FetchQuote(context.Background(), "AAPL"); !errors.Is(err, ErrFetchFailed) {
		t.Errorf("expected ErrFetchFailed, got %v", err)
	}
	if _, err := f.FetchHistory(context.Background(), "AAPL"); !errors.Is(err, ErrFetchFailed) {
		t.Errorf("expected ErrFetchFailed, got %v", err)
	}
}

func TestFMPFetcher_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // refuse connections

	f := NewFMPFetcher(srv.URL, "test-key", "")
	if _, err := f.FetchQuote(context.Background(), "AAPL"); !errors.Is(err, ErrFetchFailed) {
		t.Errorf("expected ErrFetchFailed, got %v", err)
	}
}
