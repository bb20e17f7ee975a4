package calculator

import (
	"testing"
	"time"

	"StockDash/internal/model"
)

func TestVolumeDirections(t *testing.T) {
	date := model.NewDate(2024, time.March, 1)
	tests := []struct {
		open, close float64
		want        model.Direction
	}{
		{100, 99, model.DirectionDown},
		{100, 101, model.DirectionUp},
		{100, 100, model.DirectionUp}, // flat day is up, strict less-than rule
	}
	for _, tt := range tests {
		series := model.PriceSeries{{Date: date, Open: tt.open, High: 200, Low: 1, Close: tt.close, Volume: 1}}
		got := VolumeDirections(series)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("open=%v close=%v: expected %s, got %v", tt.open, tt.close, tt.want, got)
		}
	}
}

func TestVolumeDirections_Empty(t *testing.T) {
	if got := VolumeDirections(model.PriceSeries{}); len(got) != 0 {
		t.Errorf("expected empty directions, got %d", len(got))
	}
}

func TestVolumeDirections_IndependentPerPoint(t *testing.T) {
	start := model.NewDate(2024, time.March, 1)
	series := model.PriceSeries{
		{Date: start, Open: 10, High: 11, Low: 9, Close: 9.5, Volume: 1},
		{Date: start.AddDays(1), Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 1},
		{Date: start.AddDays(2), Open: 10, High: 11, Low: 9, Close: 9.9, Volume: 1},
	}
	got := VolumeDirections(series)
	want := []model.Direction{model.DirectionDown, model.DirectionUp, model.DirectionDown}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
