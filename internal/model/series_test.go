package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-02", "2024-01-02", true},
		{"2024-01-02 00:00:00", "2024-01-02", true},
		{"2024-01-02T16:00:00Z", "2024-01-02", true},
		{"not-a-date", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseDate(%q): unexpected err %v", tt.in, err)
			continue
		}
		if tt.ok && d.String() != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, d, tt.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-03-05"` {
		t.Errorf("unexpected JSON: %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed date: %s vs %s", back, d)
	}
}

func TestPriceSeries_Tail(t *testing.T) {
	series := PriceSeries{
		{Date: NewDate(2024, time.January, 1), Close: 1},
		{Date: NewDate(2024, time.January, 2), Close: 2},
		{Date: NewDate(2024, time.January, 3), Close: 3},
	}
	tail := series.Tail(2)
	if len(tail) != 2 || tail[0].Close != 2 || tail[1].Close != 3 {
		t.Errorf("unexpected tail: %+v", tail)
	}
	if got := series.Tail(10); len(got) != 3 {
		t.Errorf("expected whole series for oversized n, got %d", len(got))
	}
	if got := series.Tail(0); len(got) != 0 {
		t.Errorf("expected empty tail for n=0, got %d", len(got))
	}

	// Tail must copy, not alias.
	tail[0].Close = -1
	if series[1].Close != 2 {
		t.Error("Tail aliased the input series")
	}
}
