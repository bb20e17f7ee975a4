package model

import "strconv"

// PENotAvailable is the display sentinel for a missing P/E ratio.
const PENotAvailable = "N/A"

// QuoteRecord is a normalized snapshot of the latest quote for one symbol.
// Numeric fields default to 0 when the upstream omits them; PE stays nil.
type QuoteRecord struct {
	Symbol            string   `json:"symbol"`
	Price             float64  `json:"price"`
	ChangesPercentage float64  `json:"changesPercentage"`
	DayHigh           float64  `json:"dayHigh"`
	DayLow            float64  `json:"dayLow"`
	YearHigh          float64  `json:"yearHigh"`
	YearLow           float64  `json:"yearLow"`
	MarketCap         float64  `json:"marketCap"`
	Volume            int64    `json:"volume"`
	PE                *float64 `json:"pe"`
}

// PEText renders the P/E ratio for display, using the not-available sentinel
// when the upstream did not report one.
func (q QuoteRecord) PEText() string {
	if q.PE == nil {
		return PENotAvailable
	}
	return strconv.FormatFloat(*q.PE, 'f', 2, 64)
}
