package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/phys/components"
	"github.com/pthm-cable/phys/quantity"
)

const eps = 1e-9

func testBounds() Bounds {
	return Bounds{Width: quantity.Meters(100), Height: quantity.Meters(100)}
}

func spawnMobile(w *ecs.World, at quantity.Position, v quantity.Velocity) (*components.Translation, *components.Motion) {
	mapper := ecs.NewMap2[components.Translation, components.Motion](w)
	tr := components.Translation{At: at}
	mo := components.Motion{V: v}
	entity := mapper.NewEntity(&tr, &mo)
	trOut, moOut := mapper.Get(entity)
	return trOut, moOut
}

func TestKinematicsIntegratesPosition(t *testing.T) {
	w := ecs.NewWorld()
	tr, _ := spawnMobile(w,
		quantity.NewPosition(10, 20),
		quantity.NewVelocity(3, 4),
	)
	sys := NewKinematicsSystem(w, testBounds(), quantity.MetersPerSecond(1000))

	moved := sys.Update(quantity.Seconds(1))

	if math.Abs(tr.At.X.Value-13) > eps || math.Abs(tr.At.Y.Value-24) > eps {
		t.Errorf("position = %v, want (13 m, 24 m)", tr.At)
	}
	if math.Abs(moved.Value-5) > eps {
		t.Errorf("moved = %v, want 5 m", moved)
	}
}

func TestKinematicsClampsSpeed(t *testing.T) {
	w := ecs.NewWorld()
	_, mo := spawnMobile(w,
		quantity.NewPosition(50, 50),
		quantity.NewVelocity(30, 40),
	)
	sys := NewKinematicsSystem(w, testBounds(), quantity.MetersPerSecond(10))

	sys.Update(quantity.Seconds(0.01))

	if math.Abs(mo.V.Magnitude().Value-10) > eps {
		t.Errorf("speed = %v, want 10 m/s", mo.V.Magnitude())
	}
	// Direction preserved
	if math.Abs(mo.V.X.Value-6) > eps || math.Abs(mo.V.Y.Value-8) > eps {
		t.Errorf("velocity = %v, want (6 m/s, 8 m/s)", mo.V)
	}
}

func TestKinematicsWrapsToroidally(t *testing.T) {
	tests := []struct {
		name         string
		start        quantity.Position
		v            quantity.Velocity
		wantX, wantY float64
	}{
		{"east edge", quantity.NewPosition(99, 50), quantity.NewVelocity(5, 0), 4, 50},
		{"west edge", quantity.NewPosition(1, 50), quantity.NewVelocity(-5, 0), 96, 50},
		{"north edge", quantity.NewPosition(50, 99), quantity.NewVelocity(0, 5), 50, 4},
		{"south edge", quantity.NewPosition(50, 1), quantity.NewVelocity(0, -5), 50, 96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			tr, _ := spawnMobile(w, tt.start, tt.v)
			sys := NewKinematicsSystem(w, testBounds(), quantity.MetersPerSecond(1000))

			sys.Update(quantity.Seconds(1))

			if math.Abs(tr.At.X.Value-tt.wantX) > eps || math.Abs(tr.At.Y.Value-tt.wantY) > eps {
				t.Errorf("position = %v, want (%v, %v)", tr.At, tt.wantX, tt.wantY)
			}
		})
	}
}
