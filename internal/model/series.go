package model

import (
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 day format used by the upstream API.
const DateFormat = "2006-01-02"

// Date represents a trading day with day-level granularity (midnight UTC).
type Date struct {
	t time.Time
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO-like date string, tolerating a trailing time part.
func ParseDate(s string) (Date, error) {
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// Before reports whether d falls before x.
func (d Date) Before(x Date) bool { return d.t.Before(x.t) }

// Equal reports whether d and x are the same day.
func (d Date) Equal(x Date) bool { return d.t.Equal(x.t) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns the canonical time.Time for the day (midnight UTC).
func (d Date) Time() time.Time { return d.t }

// AddDays returns the date i calendar days later.
func (d Date) AddDays(i int) Date { return Date{d.t.AddDate(0, 0, i)} }

func (d Date) String() string { return d.t.Format(DateFormat) }

// MarshalJSON encodes the date as a "2006-01-02" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "2006-01-02" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a JSON string: %s", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// PricePoint represents one trading day's OHLCV bar.
// Expected from upstream data: Low <= Open, Close <= High.
type PricePoint struct {
	Date   Date    `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// PriceSeries holds daily bars strictly ascending by date with no duplicate
// dates. It is built once per fetch and never mutated; downstream stages
// derive new sequences instead.
type PriceSeries []PricePoint

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Tail returns a copy of the last n points, or of the whole series when it
// has fewer than n points.
func (s PriceSeries) Tail(n int) PriceSeries {
	if n < 0 {
		n = 0
	}
	start := len(s) - n
	if start < 0 {
		start = 0
	}
	out := make(PriceSeries, len(s)-start)
	copy(out, s[start:])
	return out
}
