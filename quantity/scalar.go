// Package quantity provides compile-time dimensional analysis for 2D
// physical quantities: unit-tagged scalars, unit-tagged vectors, a bounded
// angle type and the closed algebra of legal cross-unit conversions.
//
// All types are immutable values; every operation returns a new value.
// Unit mismatches are compile errors, never runtime failures. Numeric edge
// cases (NaN, infinities, negative mass) are not validated and propagate
// per IEEE-754: garbage in, garbage out.
package quantity

import (
	"fmt"
	"io"

	"github.com/pthm-cable/phys/unit"
)

// Scalar is a single floating-point magnitude tagged with unit U. The type
// parameter is phantom: it occupies no storage, so a Scalar is exactly one
// float64 at runtime. Arithmetic between scalars of different units does
// not compile; cross-unit products and quotients go through the relation
// table in convert.go.
type Scalar[U unit.Unit] struct {
	Value float64
}

// ScalarOf tags a raw magnitude with unit U. Prefer the named constructors
// (Seconds, Meters, ...) where one exists.
func ScalarOf[U unit.Unit](v float64) Scalar[U] {
	return Scalar[U]{Value: v}
}

// Add returns s + o. Same unit only.
func (s Scalar[U]) Add(o Scalar[U]) Scalar[U] {
	return Scalar[U]{Value: s.Value + o.Value}
}

// Sub returns s - o. Same unit only.
func (s Scalar[U]) Sub(o Scalar[U]) Scalar[U] {
	return Scalar[U]{Value: s.Value - o.Value}
}

// Neg returns the scalar multiplied by -1.
func (s Scalar[U]) Neg() Scalar[U] {
	return s.Scale(-1)
}

// Scale returns the scalar multiplied by a dimensionless factor.
func (s Scalar[U]) Scale(k float64) Scalar[U] {
	return Scalar[U]{Value: s.Value * k}
}

// Div returns the scalar divided by a dimensionless factor.
func (s Scalar[U]) Div(k float64) Scalar[U] {
	return Scalar[U]{Value: s.Value / k}
}

// Ratio divides two same-unit scalars. The units cancel, so the result is
// a plain number.
func (s Scalar[U]) Ratio(o Scalar[U]) float64 {
	return s.Value / o.Value
}

// Less reports whether s is strictly below o.
func (s Scalar[U]) Less(o Scalar[U]) bool {
	return s.Value < o.Value
}

// IsZero reports whether the scalar is the additive identity.
func (s Scalar[U]) IsZero() bool {
	return s.Value == 0
}

// symbol returns the display symbol of the phantom unit.
func symbol[U unit.Unit]() string {
	var u U
	return u.Symbol()
}

// Format implements fmt.Formatter. The value renders at the caller's
// precision (default 2), followed by the unit symbol when the unit has
// one: "1.25 s", or "1.25" for dimensionless. %e and %E select
// exponential notation.
func (s Scalar[U]) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = 2
	}
	switch verb {
	case 'e':
		fmt.Fprintf(f, "%.*e", prec, s.Value)
	case 'E':
		fmt.Fprintf(f, "%.*E", prec, s.Value)
	default:
		fmt.Fprintf(f, "%.*f", prec, s.Value)
	}
	if sym := symbol[U](); sym != "" {
		io.WriteString(f, " ")
		io.WriteString(f, sym)
	}
}

// String renders the scalar at the default precision.
func (s Scalar[U]) String() string {
	return fmt.Sprintf("%v", s)
}
