package marketdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// QuotePayload is the raw quote response shape: a list of field maps. An
// empty or absent body decodes to an empty payload, not an error.
type QuotePayload []map[string]any

// HistoryPayload is the raw historical-price-full response shape. A missing
// "historical" key leaves Records empty, which downstream treats as "no
// history available" rather than a failure.
type HistoryPayload struct {
	Symbol  string           `json:"symbol"`
	Records []map[string]any `json:"historical"`
}

// DecodeQuote parses a raw quote body. It fails only when the body is
// present and not a list-like structure.
func DecodeQuote(data []byte) (QuotePayload, error) {
	if isAbsent(data) {
		return QuotePayload{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var p QuotePayload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("quote payload is not a list: %w", err)
	}
	return p, nil
}

// DecodeHistory parses a raw historical body.
func DecodeHistory(data []byte) (HistoryPayload, error) {
	if isAbsent(data) {
		return HistoryPayload{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var p HistoryPayload
	if err := dec.Decode(&p); err != nil {
		return HistoryPayload{}, fmt.Errorf("history payload is not a mapping: %w", err)
	}
	return p, nil
}

func isAbsent(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// numericField extracts a numeric value that may arrive as a JSON number or
// a numeric string.
func numericField(rec map[string]any, key string) (float64, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing field %q", key)
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", key, err)
		}
		return f, nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q has non-numeric type %T", key, v)
	}
}

func stringField(rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q has non-string type %T", key, v)
	}
	return s, nil
}
