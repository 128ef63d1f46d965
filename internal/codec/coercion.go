package codec

import (
	"encoding/json"
	"strconv"
	"strings"
)

/*
 * Scalar coercion for codec parsing.
 *
 * Strict numeric mode: strings coerce to float64 only when the whole
 * trimmed string parses; booleans are rejected to avoid "true" vs 1
 * ambiguity. Whitespace-only strings are not valid numbers.
 *
 * Raw values arrive from three sources with different dynamic types:
 * host-native Go values (float64/int), JSON-decoded documents (float64,
 * json.Number), and edit-control strings. asNumber normalizes all of them.
 */

// asNumber converts a scalar to float64 for numeric fields.
// Accepts float64, float32, int, int64, json.Number, and numeric strings.
// Rejects booleans and empty strings.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asString converts a scalar to its string field representation.
// Non-string values are rejected; numeric-to-string leniency is not wanted
// for unit and currency codes.
func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// emptyField reports whether a record field counts as absent: nil or an
// empty/whitespace-only string.
func emptyField(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// formatNumber renders a float in its shortest exact form, or with a fixed
// number of decimal places when places is positive. Used when writing
// normalized text back into edit controls (strips leading zeros and
// trailing separators).
func formatNumber(v float64, places int) string {
	if places > 0 {
		return strconv.FormatFloat(v, 'f', places, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
