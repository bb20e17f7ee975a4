package calculator

import "StockDash/internal/model"

// VolumeDirections derives the per-point volume bar color. Only a strict
// decline (close < open) counts as down; a flat day is up.
func VolumeDirections(series model.PriceSeries) []model.Direction {
	out := make([]model.Direction, len(series))
	for i, p := range series {
		if p.Close < p.Open {
			out[i] = model.DirectionDown
		} else {
			out[i] = model.DirectionUp
		}
	}
	return out
}
