package utils

import (
	"strings"
	"time"
)

// NormalizeCode left-pads a raw identifier with zeros up to width characters.
// Values already at or above width are returned unchanged, never truncated.
// A missing value is treated as the empty string, which pads to an all-zero
// code; callers that care about that must check the input themselves.
func NormalizeCode(raw string, width int) string {
	if len(raw) >= width {
		return raw
	}
	return strings.Repeat("0", width-len(raw)) + raw
}

// ParseDuration safely parses duration strings like "5m", falling back to
// the given default on empty or malformed input.
func ParseDuration(d string, fallback time.Duration) time.Duration {
	if d == "" {
		return fallback
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return fallback
	}
	return duration
}

// CleanHeader trims whitespace and removes ALL quotes from a CSV header cell.
func CleanHeader(h string) string {
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}
