package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/phys/components"
	"github.com/pthm-cable/phys/quantity"
)

// PropulsionSystem turns craft, applies engine thrust, burns fuel and
// applies drag. Everything flows through the conversion relations: the
// compiler rejects any step that mixes units.
type PropulsionSystem struct {
	filter ecs.Filter4[components.Motion, components.Attitude, components.Body, components.Tank]
	engMap *ecs.Map1[components.Engine]
	drag   float64 // quadratic drag coefficient (1/m)
}

// NewPropulsionSystem creates a propulsion system for the given world.
func NewPropulsionSystem(w *ecs.World, drag float64) *PropulsionSystem {
	return &PropulsionSystem{
		filter: *ecs.NewFilter4[components.Motion, components.Attitude, components.Body, components.Tank](w),
		engMap: ecs.NewMap1[components.Engine](w),
		drag:   drag,
	}
}

// Report is the tick aggregate handed to telemetry.
type Report struct {
	BurnedEnergy quantity.Energy
	ThrustWork   quantity.Energy
}

// Update advances every powered entity by dt and reports the fuel energy
// spent and the work done by thrust during the tick.
func (s *PropulsionSystem) Update(dt quantity.Time) Report {
	var rep Report

	query := s.filter.Query()
	for query.Next() {
		mo, att, body, tank := query.Get()
		eng := s.engMap.Get(query.Entity())

		// Steering: the heading advances by turn rate · dt and stays in
		// the canonical range by construction.
		swept := quantity.SpinRel.Mul(dt, att.Turn)
		att.Heading = att.Heading.Add(quantity.AngleOf(swept))

		burning := eng.Throttle > 0 && !tank.Fuel.IsZero()
		if burning {
			// Fuel burn: power → mass rate → mass spent this tick.
			power := eng.Power.Scale(eng.Throttle)
			rate := quantity.BurnRel.Div(power, tank.SpecificEnergy)
			burned := quantity.MassRateRel.Mul(dt, rate)
			if tank.Fuel.Less(burned) {
				burned = tank.Fuel
			}
			tank.Fuel = tank.Fuel.Sub(burned)
			rep.BurnedEnergy = rep.BurnedEnergy.Add(
				quantity.SpecificEnergyRel.Mul(burned, tank.SpecificEnergy))

			// Thrust: force → acceleration along the heading.
			thrust := eng.Thrust.Scale(eng.Throttle)
			mass := body.DryMass.Add(tank.Fuel)
			accel := quantity.ForceRel.Div(thrust, mass)
			accVec := quantity.Polar(accel, att.Heading)
			mo.V = mo.V.Add(quantity.AccelRel.MulVec(accVec, dt))

			// Work done against the craft this tick: thrust over the
			// distance covered at the current speed.
			step := quantity.SpeedRel.Mul(dt, mo.V.Magnitude())
			rep.ThrustWork = rep.ThrustWork.Add(quantity.WorkRel.Mul(step, thrust))
		}

		// Quadratic drag: fractional loss per tick grows with speed.
		factor := 1 - s.drag*mo.V.Magnitude().Value*dt.Value
		if factor < 0 {
			factor = 0
		}
		mo.V = mo.V.Scale(factor)
	}

	return rep
}
