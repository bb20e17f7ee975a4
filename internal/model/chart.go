package model

import "time"

// Direction indicates the rendering color for a volume bar.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// MovingAverageSeries is a windowed mean of close prices, aligned index by
// index to the price series it was derived from. Entries with fewer than
// Window points behind them are nil (JSON null) so a renderer can omit them.
type MovingAverageSeries struct {
	Window int        `json:"window"`
	Values []*float64 `json:"values"`
}

// ChartBundle is the finished series set for one candlestick+volume view and
// one overlay (close + MA20 + MA50) view, plus the recent-data table rows.
type ChartBundle struct {
	Points     PriceSeries         `json:"points"`
	Directions []Direction         `json:"directions"`
	MAShort    MovingAverageSeries `json:"maShort"`
	MALong     MovingAverageSeries `json:"maLong"`
	Table      PriceSeries         `json:"table"`
}

// DashboardSnapshot is everything one dashboard render needs.
type DashboardSnapshot struct {
	Symbol    string      `json:"symbol"`
	Quote     QuoteRecord `json:"quote"`
	HasQuote  bool        `json:"hasQuote"`
	Chart     ChartBundle `json:"chart"`
	FetchedAt time.Time   `json:"fetchedAt"`
}
