package calculator

import (
	"errors"

	"StockDash/internal/model"
)

// MovingAverage computes the simple moving average of close prices over the
// given window, aligned index by index to the input series. The entry at i is
// the mean of closes[i-window+1 .. i] when i >= window-1 and nil otherwise,
// so a renderer can omit the undefined prefix instead of plotting zeros.
func MovingAverage(series model.PriceSeries, window int) (model.MovingAverageSeries, error) {
	if window <= 0 {
		return model.MovingAverageSeries{}, errors.New("window must be positive")
	}
	closes := series.Closes()
	values := make([]*float64, len(closes))
	for i := window - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		mean := sum / float64(window)
		values[i] = &mean
	}
	return model.MovingAverageSeries{Window: window, Values: values}, nil
}
