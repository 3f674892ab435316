// Package rotation implements the deterministic selection primitives behind
// the daily content rotation: a portable string hash, the seed-string
// builder, and seeded single and subset pickers.
//
// Every function here is pure. For a fixed seed string and pool the result is
// identical across calls, processes, and machines, which is what lets a
// vendor see the same content all day without any stored state.
package rotation

import (
	"strings"
	"unicode/utf16"

	"github.com/iwvelando/vendor-insights/pkg/constants"
)

// Hash maps s to a non-negative integer using the 31-multiplier string hash
// with 32-bit two's-complement wraparound, folding in one UTF-16 code unit at
// a time, and returns the absolute value of the final accumulator.
//
// The absolute value of math.MinInt32 is 2147483648, which is why the result
// is a uint32. Hash("") is 0.
func Hash(s string) uint32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// SeedString joins the non-empty parts of a selection key with the seed
// separator: "entity-day" for quotes and "entity-category-day" for
// recommendations.
func SeedString(entityID, category, dayKey string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{entityID, category, dayKey} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, constants.SeedSeparator)
}
