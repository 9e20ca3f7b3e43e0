package quantity

import "github.com/pthm-cable/phys/unit"

// Rel is one registered conversion relation N = D·R between three units:
// a product unit N and its two factor units D and R. The operator set is
// implemented once, generically, on Rel; the package-level instances below
// form the complete, closed conversion table. A unit combination with no
// instance simply does not compile; dimensional correctness is guaranteed
// per registered triple, never inferred.
//
// Rel is zero-size and stateless; instances are pure compile-time
// witnesses.
type Rel[N, D, R unit.Unit] struct{}

// Mul combines the two factor units into the product unit: D·R → N.
func (Rel[N, D, R]) Mul(d Scalar[D], r Scalar[R]) Scalar[N] {
	return ScalarOf[N](d.Value * r.Value)
}

// Div sheds the factor unit D from the product: N/D → R.
func (Rel[N, D, R]) Div(n Scalar[N], d Scalar[D]) Scalar[R] {
	return ScalarOf[R](n.Value / d.Value)
}

// Swap exchanges the two factor roles, giving the commuted operand order
// for Mul and the other division (N/R → D). For the squaring relations
// the swap is the relation itself.
func (Rel[N, D, R]) Swap() Rel[N, R, D] {
	return Rel[N, R, D]{}
}

// MulVec scales a factor-unit vector by the other factor: Vector[R]·D →
// Vector[N]. With the speed relation this is velocity · time → position.
func (Rel[N, D, R]) MulVec(v Vector[R], d Scalar[D]) Vector[N] {
	return VectorOf[N](v.X.Value*d.Value, v.Y.Value*d.Value)
}

// DivVec sheds the factor unit D from a product-unit vector: Vector[N]/D →
// Vector[R]. With the speed relation this is position / time → velocity.
func (Rel[N, D, R]) DivVec(v Vector[N], d Scalar[D]) Vector[R] {
	return VectorOf[R](v.X.Value/d.Value, v.Y.Value/d.Value)
}

// The registered relation table. Each line reads "product = factor ·
// factor". This set is closed: extending it is a source change here.
var (
	// SpeedRel: length = time · speed.
	SpeedRel Rel[unit.Meters, unit.Seconds, unit.MetersPerSecond]
	// AccelRel: speed = time · acceleration.
	AccelRel Rel[unit.MetersPerSecond, unit.Seconds, unit.MetersPerSecondSquared]
	// ForceRel: force = mass · acceleration.
	ForceRel Rel[unit.Newtons, unit.Kilograms, unit.MetersPerSecondSquared]
	// FallRel: length = time² · acceleration.
	FallRel Rel[unit.Meters, unit.SecondsSquared, unit.MetersPerSecondSquared]
	// WorkRel: energy = length · force.
	WorkRel Rel[unit.Joules, unit.Meters, unit.Newtons]
	// SpecificEnergyRel: energy = mass · specific energy.
	SpecificEnergyRel Rel[unit.Joules, unit.Kilograms, unit.JoulesPerKilogram]
	// PowerRel: energy = time · power.
	PowerRel Rel[unit.Joules, unit.Seconds, unit.JoulesPerSecond]
	// BurnRel: power = specific energy · mass rate.
	BurnRel Rel[unit.JoulesPerSecond, unit.JoulesPerKilogram, unit.KilogramsPerSecond]
	// MassRateRel: mass = time · mass rate.
	MassRateRel Rel[unit.Kilograms, unit.Seconds, unit.KilogramsPerSecond]
	// AreaRel: area = length · length (squaring).
	AreaRel Rel[unit.MetersSquared, unit.Meters, unit.Meters]
	// TimeSquareRel: time² = time · time (squaring).
	TimeSquareRel Rel[unit.SecondsSquared, unit.Seconds, unit.Seconds]
	// VolumeRel: volume = length · area.
	VolumeRel Rel[unit.MetersCubed, unit.Meters, unit.MetersSquared]
	// DensityRel: mass = volume · density.
	DensityRel Rel[unit.Kilograms, unit.MetersCubed, unit.KilogramsPerMeterCubed]
	// ScaleRel: length = scale · pixels.
	ScaleRel Rel[unit.Meters, unit.MetersPerPixel, unit.Pixels]
	// SpinRel: angle = time · angular speed.
	SpinRel Rel[unit.Radians, unit.Seconds, unit.RadiansPerSecond]
)
