package quantity

import "github.com/pthm-cable/phys/unit"

// Domain names for the unit-tagged containers. These are aliases, not new
// types: a Time is a Scalar[unit.Seconds] and carries its full method set.
type (
	// Dimensionless is a tagged plain number.
	Dimensionless = Scalar[unit.Unitless]
	// UnitVector is a dimensionless direction vector.
	UnitVector = Vector[unit.Unitless]

	// Time is a duration in seconds.
	Time = Scalar[unit.Seconds]
	// TimeSquared is a squared duration in s².
	TimeSquared = Scalar[unit.SecondsSquared]

	// Mass is a mass in kilograms.
	Mass = Scalar[unit.Kilograms]

	// Length is a distance in meters.
	Length = Scalar[unit.Meters]
	// Position is a 2D point or displacement in meters.
	Position = Vector[unit.Meters]

	// Speed is a scalar rate of travel in m/s.
	Speed = Scalar[unit.MetersPerSecond]
	// Velocity is a 2D rate of travel in m/s.
	Velocity = Vector[unit.MetersPerSecond]

	// Accel is a scalar acceleration in m/s².
	Accel = Scalar[unit.MetersPerSecondSquared]
	// Acceleration is a 2D acceleration in m/s².
	Acceleration = Vector[unit.MetersPerSecondSquared]

	// Temperature is an absolute temperature in kelvin.
	Temperature = Scalar[unit.Kelvin]

	// Force is a force in newtons.
	Force = Scalar[unit.Newtons]

	// Energy is an energy in joules.
	Energy = Scalar[unit.Joules]
	// EnergyDensity is specific energy in J/kg.
	EnergyDensity = Scalar[unit.JoulesPerKilogram]
	// Power is an energy rate in J/s.
	Power = Scalar[unit.JoulesPerSecond]
	// MassRate is a mass flow in kg/s.
	MassRate = Scalar[unit.KilogramsPerSecond]

	// Area is an area in m².
	Area = Scalar[unit.MetersSquared]
	// Volume is a volume in m³.
	Volume = Scalar[unit.MetersCubed]
	// Density is a volumetric density in kg/m³.
	Density = Scalar[unit.KilogramsPerMeterCubed]

	// ResolutionScalar is a screen-space extent in pixels.
	ResolutionScalar = Scalar[unit.Pixels]
	// Resolution is a 2D screen-space extent in pixels.
	Resolution = Vector[unit.Pixels]
	// Scale is the world-to-screen factor in m/px.
	Scale = Scalar[unit.MetersPerPixel]

	// AngleScalar is an unbounded angle magnitude in radians, used by the
	// angular-speed relation. The bounded Angle type is separate.
	AngleScalar = Scalar[unit.Radians]
	// AngularSpeed is an angular rate in rad/s.
	AngularSpeed = Scalar[unit.RadiansPerSecond]
)
