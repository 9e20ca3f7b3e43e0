// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/phys/components"
	"github.com/pthm-cable/phys/quantity"
)

// Bounds is the simulation world extent in meters. The world is toroidal:
// both axes wrap.
type Bounds struct {
	Width, Height quantity.Length
}

// KinematicsSystem advances positions from velocities and enforces the
// speed cap and world wrap.
type KinematicsSystem struct {
	filter   ecs.Filter2[components.Translation, components.Motion]
	bounds   Bounds
	maxSpeed quantity.Speed
}

// NewKinematicsSystem creates a kinematics system for the given world.
func NewKinematicsSystem(w *ecs.World, bounds Bounds, maxSpeed quantity.Speed) *KinematicsSystem {
	return &KinematicsSystem{
		filter:   *ecs.NewFilter2[components.Translation, components.Motion](w),
		bounds:   bounds,
		maxSpeed: maxSpeed,
	}
}

// Update advances every mobile entity by dt and returns the total distance
// the fleet covered during the tick.
func (s *KinematicsSystem) Update(dt quantity.Time) quantity.Length {
	var moved quantity.Length

	query := s.filter.Query()
	for query.Next() {
		tr, mo := query.Get()

		// Clamp to the hard speed cap, preserving direction.
		if s.maxSpeed.Less(mo.V.Magnitude()) {
			if dir, ok := mo.V.Normalize(); ok {
				mo.V = s.maxSpeed.Along(dir)
			}
		}

		step := quantity.SpeedRel.MulVec(mo.V, dt)
		tr.At = tr.At.Add(step)
		moved = moved.Add(step.Magnitude())

		// Toroidal wrap on both axes.
		zero := quantity.Length{}
		if tr.At.X.Less(zero) {
			tr.At.X = tr.At.X.Add(s.bounds.Width)
		}
		if s.bounds.Width.Less(tr.At.X) {
			tr.At.X = tr.At.X.Sub(s.bounds.Width)
		}
		if tr.At.Y.Less(zero) {
			tr.At.Y = tr.At.Y.Add(s.bounds.Height)
		}
		if s.bounds.Height.Less(tr.At.Y) {
			tr.At.Y = tr.At.Y.Sub(s.bounds.Height)
		}
	}

	return moved
}
