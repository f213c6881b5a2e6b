// Package quorem provides the floored-division-with-remainder primitive
// used to decompose elapsed seconds into calendar units.
package quorem

import (
	"fmt"
	"math"
)

// Div returns the floored quotient and the remainder of numerator divided
// by denominator.
//
// Both operands must be non-negative and the denominator must not be zero.
// Violations panic: callers in this module guarantee the preconditions, so
// a bad operand is a programming error, not a recoverable condition.
func Div(numerator, denominator float64) (int64, float64) {
	if numerator < 0 || denominator < 0 {
		panic(fmt.Sprintf("quorem: negative operand: Div(%v, %v)", numerator, denominator))
	}
	if denominator == 0 {
		panic("quorem: division by zero")
	}
	return int64(math.Floor(numerator / denominator)), math.Mod(numerator, denominator)
}
