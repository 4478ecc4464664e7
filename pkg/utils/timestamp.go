package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrTimestampParse marks a timestamp string that matched none of the
// accepted layouts. Callers decide whether to skip the record or abort.
var ErrTimestampParse = errors.New("unparseable timestamp")

// Accepted layouts, tried in order; first success wins.
var timestampLayouts = []string{
	"2006-01-02T15:04:05-0700", // with UTC offset
	"2006-01-02T15:04:05",      // naive, treated as UTC
}

// ParseTimestamp normalizes heterogeneous date-time strings into a single
// instant. Strings with a trailing literal "Z" are retried with the "Z"
// stripped before giving up.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrTimestampParse)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	if strings.HasSuffix(s, "Z") {
		stripped := strings.TrimSuffix(s, "Z")
		if t, err := time.Parse("2006-01-02T15:04:05", stripped); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampParse, s)
}
