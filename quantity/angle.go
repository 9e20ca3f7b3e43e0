package quantity

import (
	"fmt"
	"math"

	"github.com/pthm-cable/phys/unit"
)

// Angle is a plane angle held in the canonical range [0, 2π) radians.
// Every constructor and arithmetic operation renormalizes, so no Angle
// value is ever observable outside that interval. The zero value is a
// zero angle.
type Angle struct {
	radians float64
}

const (
	angleMin = 0.0
	angleMax = 2 * math.Pi
)

// Radians constructs an Angle, wrapping the input into [0, 2π). Negative
// inputs wrap by reflecting through the top of the range.
func Radians(radians float64) Angle {
	if radians < angleMin {
		r := math.Mod(-radians, angleMax)
		if r == 0 {
			return Angle{}
		}
		return Angle{radians: angleMax - r}
	}
	if radians >= angleMax {
		return Angle{radians: math.Mod(radians, angleMax)}
	}
	return Angle{radians: radians}
}

// Degrees constructs an Angle from degrees.
func Degrees(degrees float64) Angle {
	return Radians(degrees * math.Pi / 180)
}

// Radians returns the canonical radian value in [0, 2π).
func (a Angle) Radians() float64 { return a.radians }

// Degrees returns the angle in degrees, in [0, 360).
func (a Angle) Degrees() float64 { return a.radians * 180 / math.Pi }

// Add returns a + b, renormalized.
func (a Angle) Add(b Angle) Angle {
	return Radians(a.radians + b.radians)
}

// Sub returns a - b, renormalized.
func (a Angle) Sub(b Angle) Angle {
	return Radians(a.radians - b.radians)
}

// Scale returns the angle multiplied by a dimensionless factor,
// renormalized.
func (a Angle) Scale(k float64) Angle {
	return Radians(a.radians * k)
}

// Div returns the angle divided by a dimensionless factor, renormalized.
func (a Angle) Div(k float64) Angle {
	return Radians(a.radians / k)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.radians) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.radians) }

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 { return math.Tan(a.radians) }

// Scalar bridges the bounded angle to the unit-tagged scalar form used by
// the angular-speed relation.
func (a Angle) Scalar() AngleScalar {
	return ScalarOf[unit.Radians](a.radians)
}

// AngleOf brings a radian-tagged scalar back into the canonical range.
func AngleOf(s AngleScalar) Angle {
	return Radians(s.Value)
}

// Format implements fmt.Formatter, rendering the radian value like a
// radian-tagged scalar: "1.57 rad".
func (a Angle) Format(f fmt.State, verb rune) {
	a.Scalar().Format(f, verb)
}

// String renders the angle at the default precision.
func (a Angle) String() string {
	return fmt.Sprintf("%v", a)
}
