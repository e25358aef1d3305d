package formula

import "math/rand/v2"

// MaxRandomCount is the largest count RandomInts callers should request.
const MaxRandomCount = 100

// RandomInts returns count uniformly distributed integers in [min, max].
// Callers validate min < max and 0 < count <= MaxRandomCount. Any such range
// is drawable, including one spanning every int. A nil rng uses the global
// source.
func RandomInts(rng *rand.Rand, min, max, count int) []int {
	uint64N, full := rand.Uint64N, rand.Uint64
	if rng != nil {
		uint64N, full = rng.Uint64N, rng.Uint64
	}

	// The width wraps to 0 only when [min, max] covers all 2^64 values.
	width := uint64(max-min) + 1
	out := make([]int, count)
	for i := range out {
		var off uint64
		if width == 0 {
			off = full()
		} else {
			off = uint64N(width)
		}
		out[i] = min + int(off)
	}
	return out
}
