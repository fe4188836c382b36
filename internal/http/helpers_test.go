package http

import (
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"  hello  ", "hello"},
		{"tab\tok", "tab\tok"},
		{"bell\x07gone", "bellgone"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.out {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{12.5, "12.50"},
		{0, "0.00"},
		{-3.333, "-3.33"},
		{7.005, "7.00"}, // stored just below the midpoint
	}
	for _, tc := range cases {
		if got := formatAmount(tc.in); got != tc.out {
			t.Errorf("formatAmount(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestChartJSON(t *testing.T) {
	got := string(chartJSON([]string{"Food", "Tra\"nsport"}))
	if !strings.HasPrefix(got, "[") || !strings.Contains(got, `\"`) {
		t.Fatalf("chartJSON output not a quoted JSON array: %s", got)
	}
	if string(chartJSON([]float64{1.5, 2})) != "[1.5,2]" {
		t.Fatalf("unexpected numeric array: %s", chartJSON([]float64{1.5, 2}))
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := generateRequestID(), generateRequestID()
	if !strings.HasPrefix(a, "req_") || a == b {
		t.Fatalf("request ids not unique or unprefixed: %q %q", a, b)
	}
}
