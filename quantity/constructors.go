package quantity

import "github.com/pthm-cable/phys/unit"

// Named constructors tag raw numbers with their unit. Derived constructors
// (Minutes, Kilocalories, ...) convert into the base unit on the way in;
// there is exactly one storage unit per dimension.

// Seconds constructs a Time from seconds.
func Seconds(v float64) Time { return ScalarOf[unit.Seconds](v) }

// Minutes constructs a Time from minutes.
func Minutes(v float64) Time { return Seconds(v * 60) }

// Hours constructs a Time from hours.
func Hours(v float64) Time { return Minutes(v * 60) }

// Days constructs a Time from days.
func Days(v float64) Time { return Hours(v * 24) }

// Years constructs a Time from Julian years.
func Years(v float64) Time { return Days(v * 365.25) }

// SecondsSquared constructs a TimeSquared from s².
func SecondsSquared(v float64) TimeSquared { return ScalarOf[unit.SecondsSquared](v) }

// Kilograms constructs a Mass from kilograms.
func Kilograms(v float64) Mass { return ScalarOf[unit.Kilograms](v) }

// Meters constructs a Length from meters.
func Meters(v float64) Length { return ScalarOf[unit.Meters](v) }

// MetersPerSecond constructs a Speed from m/s.
func MetersPerSecond(v float64) Speed { return ScalarOf[unit.MetersPerSecond](v) }

// MetersPerSecondSquared constructs an Accel from m/s².
func MetersPerSecondSquared(v float64) Accel { return ScalarOf[unit.MetersPerSecondSquared](v) }

// Kelvin constructs a Temperature from kelvin.
func Kelvin(v float64) Temperature { return ScalarOf[unit.Kelvin](v) }

// Newtons constructs a Force from newtons.
func Newtons(v float64) Force { return ScalarOf[unit.Newtons](v) }

// Joules constructs an Energy from joules.
func Joules(v float64) Energy { return ScalarOf[unit.Joules](v) }

// Kilocalories constructs an Energy from kilocalories (4184 J each).
func Kilocalories(v float64) Energy { return Joules(v * 4184) }

// JoulesPerKilogram constructs an EnergyDensity from J/kg.
func JoulesPerKilogram(v float64) EnergyDensity { return ScalarOf[unit.JoulesPerKilogram](v) }

// JoulesPerSecond constructs a Power from J/s.
func JoulesPerSecond(v float64) Power { return ScalarOf[unit.JoulesPerSecond](v) }

// KilogramsPerSecond constructs a MassRate from kg/s.
func KilogramsPerSecond(v float64) MassRate { return ScalarOf[unit.KilogramsPerSecond](v) }

// SquareMeters constructs an Area from m².
func SquareMeters(v float64) Area { return ScalarOf[unit.MetersSquared](v) }

// CubicMeters constructs a Volume from m³.
func CubicMeters(v float64) Volume { return ScalarOf[unit.MetersCubed](v) }

// KilogramsPerCubicMeter constructs a Density from kg/m³.
func KilogramsPerCubicMeter(v float64) Density { return ScalarOf[unit.KilogramsPerMeterCubed](v) }

// Pixels constructs a ResolutionScalar from a pixel count.
func Pixels(v float64) ResolutionScalar { return ScalarOf[unit.Pixels](v) }

// MetersPerPixel constructs a Scale from m/px.
func MetersPerPixel(v float64) Scale { return ScalarOf[unit.MetersPerPixel](v) }

// RadiansPerSecond constructs an AngularSpeed from rad/s.
func RadiansPerSecond(v float64) AngularSpeed { return ScalarOf[unit.RadiansPerSecond](v) }

// NewPosition constructs a Position from meter components.
func NewPosition(x, y float64) Position { return VectorOf[unit.Meters](x, y) }

// NewVelocity constructs a Velocity from m/s components.
func NewVelocity(x, y float64) Velocity { return VectorOf[unit.MetersPerSecond](x, y) }

// NewAcceleration constructs an Acceleration from m/s² components.
func NewAcceleration(x, y float64) Acceleration {
	return VectorOf[unit.MetersPerSecondSquared](x, y)
}

// NewResolution constructs a Resolution from pixel components.
func NewResolution(x, y float64) Resolution { return VectorOf[unit.Pixels](x, y) }
