// Package components defines the ECS components attached to simulation
// entities. Components store quantity-typed values; the entity storage
// treats them as opaque data and all arithmetic goes through the quantity
// package's operators.
package components

import "github.com/pthm-cable/phys/quantity"

// Translation is an entity's world position.
type Translation struct {
	At quantity.Position
}

// Motion is an entity's velocity.
type Motion struct {
	V quantity.Velocity
}

// Attitude is an entity's heading and commanded turn rate.
type Attitude struct {
	Heading quantity.Angle        // clockwise from north
	Turn    quantity.AngularSpeed // signed; negative turns counter-clockwise
}

// Body holds the fixed physical properties of a craft.
type Body struct {
	DryMass quantity.Mass
	Radius  quantity.Length
}

// Tank is the fuel store. Fuel only decreases; the engine cuts out when
// the tank runs dry.
type Tank struct {
	Fuel           quantity.Mass
	SpecificEnergy quantity.EnergyDensity
}

// Energy returns the chemical energy remaining in the tank.
func (t Tank) Energy() quantity.Energy {
	return quantity.SpecificEnergyRel.Mul(t.Fuel, t.SpecificEnergy)
}

// Engine holds the propulsion parameters of a craft.
type Engine struct {
	Power    quantity.Power // fuel energy drawn per second at full throttle
	Thrust   quantity.Force // force produced at full throttle
	Throttle float64        // commanded fraction in [0, 1]
}
