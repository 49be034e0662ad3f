// Package calculator provides a chainable wrapper around a single
// floating-point value.
package calculator

import (
	"fmt"
	"math"

	"github.com/chaincalc/chaincalc/pkg/mathutil"
)

// equalityEpsilon is the tolerance used by Equals. It is deliberately
// tighter than mathutil.Epsilon; the two thresholds are independent.
const equalityEpsilon = 1e-9

// Calculator holds one value and mutates it in place through chainable
// operations. The zero value is a calculator at 0. Instances carry no
// internal locking; callers sharing one across goroutines must
// synchronize externally.
type Calculator struct {
	value float64
}

// New returns a calculator initialized to zero.
func New() *Calculator {
	return &Calculator{}
}

// NewWithValue returns a calculator initialized to v.
func NewWithValue(v float64) *Calculator {
	return &Calculator{value: v}
}

// Value returns the current value.
func (c *Calculator) Value() float64 {
	return c.value
}

// SetValue replaces the current value and returns the receiver.
func (c *Calculator) SetValue(v float64) *Calculator {
	c.value = v

	return c
}

// Add adds v to the current value and returns the receiver.
func (c *Calculator) Add(v float64) *Calculator {
	c.value = mathutil.Add(c.value, v)

	return c
}

// Subtract subtracts v from the current value and returns the receiver.
func (c *Calculator) Subtract(v float64) *Calculator {
	c.value = mathutil.Subtract(c.value, v)

	return c
}

// Multiply multiplies the current value by v and returns the receiver.
func (c *Calculator) Multiply(v float64) *Calculator {
	c.value = mathutil.Multiply(c.value, v)

	return c
}

// Divide divides the current value by v. On a near-zero divisor it
// returns mathutil.ErrDivisionByZero and leaves the value unchanged.
// The receiver is returned in both cases so callers keep their chain
// handle.
func (c *Calculator) Divide(v float64) (*Calculator, error) {
	quot, err := mathutil.Divide(c.value, v)
	if err != nil {
		return c, err
	}

	c.value = quot

	return c, nil
}

// Reset sets the value back to zero and returns the receiver.
func (c *Calculator) Reset() *Calculator {
	c.value = 0

	return c
}

// Clone returns an independent copy. Mutating the clone never affects
// the original; Calculator has no interior pointers, so plain struct
// assignment copies it just as well.
func (c *Calculator) Clone() *Calculator {
	clone := *c

	return &clone
}

// StringFixed renders the value in fixed-point decimal notation with
// exactly precision digits after the decimal point. Negative precision
// is clamped to zero.
func (c *Calculator) StringFixed(precision int) string {
	if precision < 0 {
		precision = 0
	}

	return fmt.Sprintf("%.*f", precision, c.value)
}

// String implements fmt.Stringer with two fractional digits.
func (c *Calculator) String() string {
	return c.StringFixed(2)
}

// Equals reports whether both calculators hold the same value within the
// equality tolerance.
func (c *Calculator) Equals(other *Calculator) bool {
	return math.Abs(c.value-other.value) < equalityEpsilon
}

// NotEquals is the negation of Equals.
func (c *Calculator) NotEquals(other *Calculator) bool {
	return !c.Equals(other)
}
