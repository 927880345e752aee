// Package strutil provides small string conversion helpers used by the
// REST query parsing layer.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 on failure.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToInt64 parses s as an int64, returning 0 on failure.
func ConvertToInt64(s string) int64 {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToFloat64 parses s as a float64, returning 0 on failure.
func ConvertToFloat64(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

// Truncate shortens s to at most max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
