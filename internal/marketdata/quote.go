package marketdata

import (
	"StockDash/internal/model"
)

// quoteDefaults is the explicit fallback applied per numeric quote field when
// the upstream omits it. PE is handled apart: missing means "not available",
// not zero.
var quoteDefaults = map[string]float64{
	"price":             0,
	"changesPercentage": 0,
	"dayHigh":           0,
	"dayLow":            0,
	"yearHigh":          0,
	"yearLow":           0,
	"marketCap":         0,
	"volume":            0,
}

// NormalizeQuote turns a raw quote payload into a QuoteRecord. The first
// entry is used when present; an empty payload yields an all-defaults record.
// Missing or unreadable fields never fail, they fall back to the defaults
// table.
func NormalizeQuote(p QuotePayload, symbol string) model.QuoteRecord {
	rec := model.QuoteRecord{Symbol: symbol}
	if len(p) == 0 {
		return rec
	}
	entry := p[0]

	num := func(key string) float64 {
		v, err := numericField(entry, key)
		if err != nil {
			return quoteDefaults[key]
		}
		return v
	}

	if s, err := stringField(entry, "symbol"); err == nil && s != "" {
		rec.Symbol = s
	}
	rec.Price = num("price")
	rec.ChangesPercentage = num("changesPercentage")
	rec.DayHigh = num("dayHigh")
	rec.DayLow = num("dayLow")
	rec.YearHigh = num("yearHigh")
	rec.YearLow = num("yearLow")
	rec.MarketCap = num("marketCap")
	rec.Volume = int64(num("volume"))
	if pe, err := numericField(entry, "pe"); err == nil {
		rec.PE = &pe
	}
	return rec
}
