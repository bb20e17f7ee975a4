package chart

import (
	"fmt"

	"StockDash/internal/calculator"
	"StockDash/internal/model"
)

const (
	// RecentWindowSize is how many of the latest points the charts show,
	// roughly six months of trading days.
	RecentWindowSize = 180
	// TableRowCount is how many of the latest points the data table shows.
	TableRowCount = 10
	// ShortMAWindow and LongMAWindow are the overlay moving-average windows.
	ShortMAWindow = 20
	LongMAWindow  = 50
)

// Assemble produces the chart-ready bundle for one series: the recent window,
// its volume directions, both moving averages, and the recent-table rows.
// The moving averages are computed over the recent window alone, so their
// undefined prefix is relative to the truncated slice, not the full history.
// The input series is never mutated; every output is a derived copy.
func Assemble(series model.PriceSeries) (model.ChartBundle, error) {
	recent := series.Tail(RecentWindowSize)

	maShort, err := calculator.MovingAverage(recent, ShortMAWindow)
	if err != nil {
		return model.ChartBundle{}, fmt.Errorf("ma%d: %w", ShortMAWindow, err)
	}
	maLong, err := calculator.MovingAverage(recent, LongMAWindow)
	if err != nil {
		return model.ChartBundle{}, fmt.Errorf("ma%d: %w", LongMAWindow, err)
	}

	return model.ChartBundle{
		Points:     recent,
		Directions: calculator.VolumeDirections(recent),
		MAShort:    maShort,
		MALong:     maLong,
		Table:      recent.Tail(TableRowCount),
	}, nil
}
