package query

import (
	"errors"
	"strconv"
	"strings"
)

// Coerce returns text as a float64 when it parses as a floating point
// literal, otherwise the text itself. It never fails.
// Literals too large for float64 become ±Inf.
func Coerce(text string) interface{} {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return f
	}
	return text
}

// parseLiteral types a filter value: a literal containing "." is tried as
// a float, anything else as an integer. Unparseable text stays text.
func parseLiteral(text string) interface{} {
	if strings.Contains(text, ".") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
		return text
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return i
	}
	// Integers beyond int64 still compare as numbers
	if errors.Is(err, strconv.ErrRange) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	}
	return text
}

// toFloat64 converts a value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}
