package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint32
	}{
		{"Empty string", "", 0},
		{"Single character", "a", 97},
		{"Short ASCII", "abc", 96354},
		{"Matches 31-multiplier reference", "hello", 99162322},
		{"Quote seed", "vendor_demo-2025-01-15", 179158743},
		{"Category seed", "vendor_demo-financial-2025-01-15", 492874459},
		{"Negative accumulator is folded", "vendor_42-2025-01-15", 1258814052},
		{"MinInt32 accumulator", "polygenelubricants", 2147483648},
		{"Non-ASCII BMP", "Zürich", 1482116162},
		{"Surrogate pair counts as two units", "😀", 1772899},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hash(tt.input))
		})
	}
}

func TestHashIsStable(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, uint32(179158743), Hash("vendor_demo-2025-01-15"))
	}
}

func TestSeedString(t *testing.T) {
	tests := []struct {
		name     string
		entity   string
		category string
		day      string
		expected string
	}{
		{"Quote seed", "vendor_demo", "", "2025-01-15", "vendor_demo-2025-01-15"},
		{"Recommendation seed", "vendor_demo", "risk", "2025-01-15", "vendor_demo-risk-2025-01-15"},
		{"Entity with separators kept verbatim", "a-b", "growth", "2025-01-15", "a-b-growth-2025-01-15"},
		{"Empty entity", "", "", "2025-01-15", "2025-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeedString(tt.entity, tt.category, tt.day))
		})
	}
}
