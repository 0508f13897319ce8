// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
)

// ParseJSON safely parses a JSON string.
//
// It returns the decoded value (map[string]any, []any, string, float64,
// bool) or nil if parsing fails for any reason: malformed syntax, an empty
// string, trailing data. It never returns an error, so callers can use the
// result directly with a fallback default:
//
//	body, _ := utils.ParseJSON(rc.Body).(map[string]any)
//
// A literal `null` also decodes to nil, which callers treat the same as a
// failure.
func ParseJSON(jsonStr string) any {
	var parsed any
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		// Failure to parse means no data.
		return nil
	}
	return parsed
}
