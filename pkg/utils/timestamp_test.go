package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // RFC3339 of the expected instant, "" for failure
		wantErr bool
	}{
		{"with utc offset", "2024-01-15T10:30:00+0100", "2024-01-15T10:30:00+01:00", false},
		{"negative offset", "2024-01-15T10:30:00-0500", "2024-01-15T10:30:00-05:00", false},
		{"naive treated as utc", "2024-01-15T10:30:00", "2024-01-15T10:30:00Z", false},
		{"trailing z stripped", "2024-01-15T10:30:00Z", "2024-01-15T10:30:00Z", false},
		{"space separator rejected", "2024-01-15 10:30:00", "", true},
		{"date only rejected", "2024-01-15", "", true},
		{"empty string rejected", "", "", true},
		{"garbage rejected", "not-a-date", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimestamp(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrTimestampParse) {
					t.Errorf("error does not wrap ErrTimestampParse: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", tt.input, err)
			}
			want, _ := time.Parse(time.RFC3339, tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestParseTimestampFormatOrder(t *testing.T) {
	// The offset layout is tried first; a string carrying an offset must not
	// fall through to the naive interpretation.
	got, err := ParseTimestamp("2024-06-01T00:00:00+0200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UTC().Hour() != 22 {
		t.Errorf("offset ignored: got %v", got.UTC())
	}
}
