// Package unit defines the closed vocabulary of physical unit tags.
//
// Tags are zero-size marker types that exist only to parameterize
// quantity.Scalar and quantity.Vector at compile time. Two quantities of
// different units can never unify; adding a unit is a source change here,
// never a runtime registration.
package unit

// Unit constrains the tag types usable as a quantity's phantom parameter.
// Symbol returns the display symbol, or "" for dimensionless and
// unsymboled units.
type Unit interface {
	Symbol() string
}

// Unitless tags plain numbers and normalized (unit) vectors.
type Unitless struct{}

func (Unitless) Symbol() string { return "" }

// Seconds tags time.
type Seconds struct{}

func (Seconds) Symbol() string { return "s" }

// SecondsSquared tags squared time, the denominator of ballistic relations.
type SecondsSquared struct{}

func (SecondsSquared) Symbol() string { return "s²" }

// Kilograms tags mass.
type Kilograms struct{}

func (Kilograms) Symbol() string { return "kg" }

// Meters tags length.
type Meters struct{}

func (Meters) Symbol() string { return "m" }

// MetersSquared tags area.
type MetersSquared struct{}

func (MetersSquared) Symbol() string { return "m²" }

// MetersCubed tags volume.
type MetersCubed struct{}

func (MetersCubed) Symbol() string { return "m³" }

// MetersPerSecond tags speed.
type MetersPerSecond struct{}

func (MetersPerSecond) Symbol() string { return "m/s" }

// MetersPerSecondSquared tags acceleration.
type MetersPerSecondSquared struct{}

func (MetersPerSecondSquared) Symbol() string { return "m/s²" }

// Kelvin tags absolute temperature.
type Kelvin struct{}

func (Kelvin) Symbol() string { return "K" }

// Newtons tags force.
type Newtons struct{}

func (Newtons) Symbol() string { return "N" }

// Joules tags energy.
type Joules struct{}

func (Joules) Symbol() string { return "J" }

// JoulesPerKilogram tags specific energy (energy density by mass).
type JoulesPerKilogram struct{}

func (JoulesPerKilogram) Symbol() string { return "J/kg" }

// JoulesPerSecond tags power.
type JoulesPerSecond struct{}

func (JoulesPerSecond) Symbol() string { return "J/s" }

// KilogramsPerSecond tags mass flow rate.
type KilogramsPerSecond struct{}

func (KilogramsPerSecond) Symbol() string { return "kg/s" }

// KilogramsPerMeterCubed tags volumetric density.
type KilogramsPerMeterCubed struct{}

func (KilogramsPerMeterCubed) Symbol() string { return "kg/m³" }

// Pixels tags screen-space extents.
type Pixels struct{}

func (Pixels) Symbol() string { return "px" }

// MetersPerPixel tags the world-to-screen scale factor, the bridge
// between the physical-length and pixel families.
type MetersPerPixel struct{}

func (MetersPerPixel) Symbol() string { return "m/px" }

// Radians tags plane angle magnitudes used in rate relations.
type Radians struct{}

func (Radians) Symbol() string { return "rad" }

// RadiansPerSecond tags angular speed.
type RadiansPerSecond struct{}

func (RadiansPerSecond) Symbol() string { return "rad/s" }
