package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// SafeDiv returns a / b, or 0 when b is zero or NaN.
func SafeDiv(a, b float32) float32 {
	if b == 0 || math32.IsNaN(b) {
		return 0
	}
	return a / b
}

// Cot returns the cotangent of radians, or 0 where the tangent is zero.
func Cot(radians float32) float32 {
	return SafeDiv(1, math32.Tan(radians))
}
