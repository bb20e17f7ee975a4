package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	if err := c.Set("quote:AAPL", []byte(`[{"price":1}]`), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := c.Get("quote:AAPL")
	if !ok {
		t.Fatal("expected hit")
	}
	if !bytes.Equal(got, []byte(`[{"price":1}]`)) {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemoryCache()
	if _, ok := c.Get("nope"); ok {
		t.Error("expected miss")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	current := time.Now()
	c.now = func() time.Time { return current }

	if err := c.Set("history:AAPL", []byte("v"), 60*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := c.Get("history:AAPL"); !ok {
		t.Fatal("expected hit before expiry")
	}

	current = current.Add(61 * time.Second)
	if _, ok := c.Get("history:AAPL"); ok {
		t.Error("expected miss after expiry")
	}
}

func TestMemoryCache_CopiesValue(t *testing.T) {
	c := NewMemoryCache()
	v := []byte("abc")
	if err := c.Set("k", v, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	v[0] = 'x'
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != "abc" {
		t.Errorf("expected stored copy to be immune to caller mutation, got %s", got)
	}
}
