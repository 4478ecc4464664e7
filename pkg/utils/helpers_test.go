package utils

import (
	"testing"
	"time"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		width int
		want  string
	}{
		{"short code is zero padded", "123", 9, "000000123"},
		{"exact width unchanged", "123456789", 9, "123456789"},
		{"longer than width not truncated", "1234567890", 9, "1234567890"},
		{"empty value pads to all zeros", "", 9, "000000000"},
		{"manufacturer code width 2", "7", 2, "07"},
		{"single zero", "0", 9, "000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCode(tt.raw, tt.width)
			if got != tt.want {
				t.Errorf("NormalizeCode(%q, %d) = %q, want %q", tt.raw, tt.width, got, tt.want)
			}
		})
	}
}

func TestCleanHeader(t *testing.T) {
	if got := CleanHeader(`  "CUSTOMERID" `); got != "CUSTOMERID" {
		t.Errorf("CleanHeader = %q, want CUSTOMERID", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2m", time.Minute); got != 2*time.Minute {
		t.Errorf("ParseDuration(2m) = %v", got)
	}
	if got := ParseDuration("", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration empty = %v, want fallback", got)
	}
	if got := ParseDuration("bogus", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration bogus = %v, want fallback", got)
	}
}
