package marketdata

import (
	"errors"
	"fmt"
	"sort"

	"StockDash/internal/model"
)

// ErrMalformedRecord marks a history record that is missing a required field
// or carries an unparseable value. Such records are never skipped silently:
// dropping points would corrupt moving-average alignment downstream.
var ErrMalformedRecord = errors.New("malformed history record")

// BuildSeries turns a raw historical payload into an ordered PriceSeries,
// ascending by date and deduplicated by date (input order is not guaranteed).
// An empty payload is valid and yields an empty series.
func BuildSeries(p HistoryPayload) (model.PriceSeries, error) {
	series := make(model.PriceSeries, 0, len(p.Records))
	for i, rec := range p.Records {
		pt, err := buildPoint(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		series = append(series, pt)
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	// Drop duplicate dates, keeping the record that appeared first upstream.
	dedup := series[:0:0]
	for _, pt := range series {
		if len(dedup) > 0 && dedup[len(dedup)-1].Date.Equal(pt.Date) {
			continue
		}
		dedup = append(dedup, pt)
	}
	return dedup, nil
}

func buildPoint(rec map[string]any) (model.PricePoint, error) {
	dateStr, err := stringField(rec, "date")
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	pt := model.PricePoint{Date: date}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"open", &pt.Open},
		{"high", &pt.High},
		{"low", &pt.Low},
		{"close", &pt.Close},
	} {
		v, err := numericField(rec, f.key)
		if err != nil {
			return model.PricePoint{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		*f.dst = v
	}

	vol, err := numericField(rec, "volume")
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	pt.Volume = int64(vol)
	return pt, nil
}
