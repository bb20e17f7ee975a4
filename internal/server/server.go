package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"StockDash/internal/collector"
	"StockDash/internal/marketdata"

	"github.com/cloudwego/hertz/pkg/app"
	hertzserver "github.com/cloudwego/hertz/pkg/app/server"
)

// RegisterRoutes wires the dashboard API onto a Hertz server. The routes
// expose the three read-only structures the presentation layer consumes:
// the quote record, the chart bundle, and the recent-table rows (the latter
// two travel together inside the dashboard snapshot).
func RegisterRoutes(h *hertzserver.Hertz, col *collector.Collector, defaultSymbol string) {
	h.GET("/healthz", func(_ context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	h.GET("/api/v1/quote", func(ctx context.Context, c *app.RequestContext) {
		symbol := querySymbol(c, defaultSymbol)
		if symbol == "" {
			writeError(c, http.StatusBadRequest, "symbol is required")
			return
		}
		snap, err := col.Collect(ctx, symbol)
		if err != nil {
			writeCollectError(c, symbol, err)
			return
		}
		if !snap.HasQuote {
			writeError(c, http.StatusNotFound, "no quote data for symbol "+symbol)
			return
		}
		c.JSON(http.StatusOK, map[string]any{
			"ok":      true,
			"quote":   snap.Quote,
			"pe_text": snap.Quote.PEText(),
		})
	})

	h.GET("/api/v1/dashboard", func(ctx context.Context, c *app.RequestContext) {
		symbol := querySymbol(c, defaultSymbol)
		if symbol == "" {
			writeError(c, http.StatusBadRequest, "symbol is required")
			return
		}
		snap, err := col.Collect(ctx, symbol)
		if err != nil {
			writeCollectError(c, symbol, err)
			return
		}
		if !snap.HasQuote {
			writeError(c, http.StatusNotFound, "no quote data for symbol "+symbol)
			return
		}
		c.JSON(http.StatusOK, map[string]any{
			"ok":       true,
			"snapshot": snap,
		})
	})
}

func querySymbol(c *app.RequestContext, defaultSymbol string) string {
	if s := c.Query("symbol"); s != "" {
		return s
	}
	return defaultSymbol
}

func writeCollectError(c *app.RequestContext, symbol string, err error) {
	log.Printf("[ERROR] collect %s: %v", symbol, err)
	switch {
	case errors.Is(err, collector.ErrFetchFailed):
		writeError(c, http.StatusBadGateway, "upstream fetch failed")
	case errors.Is(err, marketdata.ErrMalformedRecord):
		writeError(c, http.StatusBadGateway, "upstream data malformed")
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}

func writeError(c *app.RequestContext, status int, msg string) {
	c.JSON(status, map[string]any{"ok": false, "error": msg})
}
