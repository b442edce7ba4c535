package benchmark

import (
	"math/rand"
	"strings"
)

// DigitCounts defines the operand sizes for benchmarking.
var DigitCounts = []int{1, 20, 100, 500, 1000}

// newLiteral returns a literal with exactly digits significant digits.
func newLiteral(r *rand.Rand, digits int, negative bool) string {
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte(byte('1' + r.Intn(9)))
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('0' + r.Intn(10)))
	}
	return b.String()
}
