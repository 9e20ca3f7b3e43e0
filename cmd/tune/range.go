package main

import (
	"github.com/pthm-cable/phys/config"
	"github.com/pthm-cable/phys/quantity"
)

// rangeModel simulates a single craft thrusting in a straight line on one
// tank of fuel and returns the distance covered. The throttle follows a
// piecewise-constant schedule indexed by the fraction of fuel already
// spent, so the tuner can trade early acceleration against sustained burn.
type rangeModel struct {
	cfg *config.Config
}

// Range integrates the craft until the tank is dry and the craft has
// coasted to a stop, or until maxSim elapses.
func (m rangeModel) Range(schedule []float64, maxSim quantity.Time) quantity.Length {
	d := m.cfg.Derived
	dt := d.DT
	drag := m.cfg.Physics.Drag

	fuel := d.FuelMass
	var speed quantity.Speed
	var dist quantity.Length
	var elapsed quantity.Time

	for elapsed.Less(maxSim) {
		throttle := m.throttleFor(schedule, fuel)

		if throttle > 0 && !fuel.IsZero() {
			// Fuel burn: power → mass rate → mass spent this tick.
			power := d.EnginePower.Scale(throttle)
			rate := quantity.BurnRel.Div(power, d.FuelEnergy)
			burned := quantity.MassRateRel.Mul(dt, rate)
			if fuel.Less(burned) {
				burned = fuel
			}
			fuel = fuel.Sub(burned)

			thrust := d.EngineThrust.Scale(throttle)
			mass := d.DryMass.Add(fuel)
			accel := quantity.ForceRel.Div(thrust, mass)
			speed = speed.Add(quantity.AccelRel.Mul(dt, accel))
		}

		// Quadratic drag, then the hard speed cap.
		factor := 1 - drag*speed.Value*dt.Value
		if factor < 0 {
			factor = 0
		}
		speed = speed.Scale(factor)
		if d.MaxSpeed.Less(speed) {
			speed = d.MaxSpeed
		}

		dist = dist.Add(quantity.SpeedRel.Mul(dt, speed))
		elapsed = elapsed.Add(dt)

		// Dry tank and coasted to a stop: nothing left to gain.
		if fuel.IsZero() && speed.Less(quantity.MetersPerSecond(0.01)) {
			break
		}
	}

	return dist
}

// throttleFor picks the schedule segment from the fraction of fuel spent.
func (m rangeModel) throttleFor(schedule []float64, fuel quantity.Mass) float64 {
	spent := 1 - fuel.Ratio(m.cfg.Derived.FuelMass)
	idx := int(spent * float64(len(schedule)))
	if idx >= len(schedule) {
		idx = len(schedule) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return clamp01(schedule[idx])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
