package validation

import (
	"math"
	"strconv"
	"strings"
)

// SanitizeString trims surrounding whitespace and strips angle brackets.
// This guards free-text fields against trivial markup injection; it is not
// an HTML sanitizer.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return s
}

// SanitizeNumber parses a numeric form value with float semantics. It
// accepts a string or any numeric type and returns nil when the value is
// empty, unparseable, NaN or infinite. Callers must treat nil as "field
// omitted", never as zero.
func SanitizeNumber(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
