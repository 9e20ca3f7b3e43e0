package quantity

import (
	"fmt"
	"math"

	"github.com/pthm-cable/phys/unit"
)

// Vector is a 2D physical quantity: an (x, y) pair of same-unit scalars.
// The zero value is the zero vector. Directions follow the screen
// convention used throughout this module: angle 0 points along +y
// ("north") and angles grow clockwise.
type Vector[U unit.Unit] struct {
	X, Y Scalar[U]
}

// VectorOf tags a raw component pair with unit U.
func VectorOf[U unit.Unit](x, y float64) Vector[U] {
	return Vector[U]{X: ScalarOf[U](x), Y: ScalarOf[U](y)}
}

// Add returns the component-wise sum.
func (v Vector[U]) Add(o Vector[U]) Vector[U] {
	return Vector[U]{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)}
}

// Sub returns the component-wise difference.
func (v Vector[U]) Sub(o Vector[U]) Vector[U] {
	return Vector[U]{X: v.X.Sub(o.X), Y: v.Y.Sub(o.Y)}
}

// Neg returns the vector multiplied by -1.
func (v Vector[U]) Neg() Vector[U] {
	return v.Scale(-1)
}

// Scale returns the vector multiplied by a dimensionless factor.
func (v Vector[U]) Scale(k float64) Vector[U] {
	return Vector[U]{X: v.X.Scale(k), Y: v.Y.Scale(k)}
}

// Div returns the vector divided by a dimensionless factor.
func (v Vector[U]) Div(k float64) Vector[U] {
	return Vector[U]{X: v.X.Div(k), Y: v.Y.Div(k)}
}

// Ratio divides the vector by a same-unit scalar. The units cancel, so
// the result is dimensionless.
func (v Vector[U]) Ratio(s Scalar[U]) UnitVector {
	return VectorOf[unit.Unitless](v.X.Value/s.Value, v.Y.Value/s.Value)
}

// IsZero reports whether both components are the additive identity.
func (v Vector[U]) IsZero() bool {
	return v == Vector[U]{}
}

// MagnitudeSquared returns x² + y² as a plain number. The squared unit is
// deliberately dropped: a magnitude² is not expressible as U without going
// through the relation table.
func (v Vector[U]) MagnitudeSquared() float64 {
	return v.X.Value*v.X.Value + v.Y.Value*v.Y.Value
}

// Magnitude returns the Euclidean length, re-tagged with U. This is the
// one place the squared-unit relations are bypassed: the square root is
// taken numerically instead of round-tripping through U².
func (v Vector[U]) Magnitude() Scalar[U] {
	return ScalarOf[U](math.Sqrt(v.MagnitudeSquared()))
}

// Normalize returns the direction of v as a dimensionless unit vector.
// The zero vector has no direction; ok is false.
func (v Vector[U]) Normalize() (UnitVector, bool) {
	if v.IsZero() {
		return UnitVector{}, false
	}
	m := v.Magnitude()
	return v.Ratio(m), true
}

// Along scales a unit direction by the scalar, producing a vector of the
// scalar's unit.
func (s Scalar[U]) Along(dir UnitVector) Vector[U] {
	return VectorOf[U](s.Value*dir.X.Value, s.Value*dir.Y.Value)
}

// RotateCW rotates the vector clockwise by the given angle.
func (v Vector[U]) RotateCW(a Angle) Vector[U] {
	cos := a.Cos()
	sin := a.Sin()
	x := v.X.Scale(cos).Sub(v.Y.Scale(sin))
	y := v.X.Scale(sin).Add(v.Y.Scale(cos))
	return Vector[U]{X: x, Y: y}
}

// Polar builds a vector of the given magnitude pointing in the given
// direction, clockwise from north. It is the inverse of Heading: the angle
// is negated before projecting so that Polar followed by Heading is the
// identity.
func Polar[U unit.Unit](m Scalar[U], a Angle) Vector[U] {
	neg := Radians(-a.Radians())
	x := m.Scale(-neg.Sin())
	y := m.Scale(neg.Cos())
	return Vector[U]{X: x, Y: y}
}

// Heading returns the direction of the vector as an angle in [0, 2π),
// measured clockwise from north (+y). Note the arctangent is taken of
// x over y, not the mathematical y over x. The zero vector has no
// direction; ok is false.
func (v Vector[U]) Heading() (Angle, bool) {
	if v.IsZero() {
		return Angle{}, false
	}
	switch x, y := v.X.Value, v.Y.Value; {
	case x < 0 && y < 0:
		return v.atan().Sub(Degrees(180)), true
	case y < 0:
		return Degrees(180).Add(v.atan()), true
	default:
		return v.atan(), true
	}
}

func (v Vector[U]) atan() Angle {
	return Radians(math.Atan(v.X.Value / v.Y.Value))
}

// Format implements fmt.Formatter, rendering "(x, y)" with each component
// following the Scalar rules. %e and %E select exponential notation.
func (v Vector[U]) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = 2
	}
	switch verb {
	case 'e':
		fmt.Fprintf(f, "(%.*e, %.*e)", prec, v.X, prec, v.Y)
	case 'E':
		fmt.Fprintf(f, "(%.*E, %.*E)", prec, v.X, prec, v.Y)
	default:
		fmt.Fprintf(f, "(%.*v, %.*v)", prec, v.X, prec, v.Y)
	}
}

// String renders the vector at the default precision.
func (v Vector[U]) String() string {
	return fmt.Sprintf("%v", v)
}
