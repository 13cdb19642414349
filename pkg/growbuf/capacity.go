package growbuf

import "math"

// StartCapacity is the smallest capacity any allocated buffer has.
const StartCapacity = 16

// CapacityFor returns the smallest StartCapacity*2^k that is >= required.
// Negative input counts as zero. When doubling would overflow int the result
// saturates at math.MaxInt.
func CapacityFor(required int) int {
	c := StartCapacity
	for c < required {
		if c > math.MaxInt/2 {
			return math.MaxInt
		}
		c *= 2
	}
	return c
}
