// Package mathutil provides pure arithmetic primitives that can be used
// independently of a Calculator instance. All functions are stateless and
// safe to call concurrently without coordination.
package mathutil

import (
	"errors"
	"math"
)

// Epsilon is the near-zero divisor threshold. Divisors whose absolute
// value falls below it are rejected rather than divided by, since they
// are effectively zero under floating-point representation error.
const Epsilon = 1e-10

// ErrDivisionByZero is returned by Divide for near-zero divisors.
var ErrDivisionByZero = errors.New("division by zero is not allowed")

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of a and b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of a and b. It returns ErrDivisionByZero
// when |b| < Epsilon; an exact-zero comparison would let effectively
// zero divisors through.
func Divide(a, b float64) (float64, error) {
	if math.Abs(b) < Epsilon {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}
