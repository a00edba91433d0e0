package habits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	in := time.Date(2025, 3, 15, 22, 45, 11, 123, loc)

	out := NormalizeDate(in)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), out)
	assert.Equal(t, time.UTC, out.Location())
}

func TestParseFlexibleDate(t *testing.T) {
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	native := time.Date(2025, 3, 15, 18, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		input interface{}
	}{
		{"plain date string", "2025-03-15"},
		{"rfc3339 string", "2025-03-15T18:04:05Z"},
		{"rfc3339 with offset", "2025-03-15T18:04:05+00:00"},
		{"native time", native},
		{"time pointer", &native},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexibleDate(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseFlexibleDateRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"malformed string", "15/03/2025"},
		{"empty string", ""},
		{"nil pointer", (*time.Time)(nil)},
		{"unsupported type", 20250315},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlexibleDate(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	parsed, err := ParseFlexibleDate(FormatDate(d))
	assert.NoError(t, err)
	assert.Equal(t, d, parsed)
}
