// Package sim wires the ECS world, the systems and telemetry into a
// runnable simulation.
package sim

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/phys/components"
	"github.com/pthm-cable/phys/config"
	"github.com/pthm-cable/phys/quantity"
	"github.com/pthm-cable/phys/systems"
	"github.com/pthm-cable/phys/telemetry"
)

// Options configure a simulation run.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Sim holds the complete simulation state.
type Sim struct {
	world *ecs.World
	rng   *rand.Rand

	craftMapper *ecs.Map6[
		components.Translation,
		components.Motion,
		components.Attitude,
		components.Body,
		components.Tank,
		components.Engine,
	]
	craftFilter *ecs.Filter6[
		components.Translation,
		components.Motion,
		components.Attitude,
		components.Body,
		components.Tank,
		components.Engine,
	]

	kinematics *systems.KinematicsSystem
	propulsion *systems.PropulsionSystem

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	dt             quantity.Time
	tick           int64
	paused         bool
	speed          int // simulation speed multiplier (1-10)
	stepsPerUpdate int
}

// NewSim creates a simulation from the global config and the given options.
func NewSim(opts Options) (*Sim, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	s := &Sim{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		craftMapper: ecs.NewMap6[
			components.Translation,
			components.Motion,
			components.Attitude,
			components.Body,
			components.Tank,
			components.Engine,
		](world),
		craftFilter: ecs.NewFilter6[
			components.Translation,
			components.Motion,
			components.Attitude,
			components.Body,
			components.Tank,
			components.Engine,
		](world),
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		logStats:       opts.LogStats,
		dt:             cfg.Derived.DT,
		speed:          1,
		stepsPerUpdate: stepsPerUpdate,
	}

	bounds := systems.Bounds{
		Width:  cfg.Derived.WorldWidth,
		Height: cfg.Derived.WorldHeight,
	}
	s.kinematics = systems.NewKinematicsSystem(world, bounds, cfg.Derived.MaxSpeed)
	s.propulsion = systems.NewPropulsionSystem(world, cfg.Physics.Drag)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	s.output = output
	if err := s.output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	s.spawnFleet()

	return s, nil
}

// spawnFleet creates the starting craft.
func (s *Sim) spawnFleet() {
	cfg := config.Cfg()

	for i := 0; i < cfg.Fleet.Count; i++ {
		x := cfg.Derived.WorldWidth.Scale(s.rng.Float64())
		y := cfg.Derived.WorldHeight.Scale(s.rng.Float64())
		heading := quantity.Radians(s.rng.Float64() * 2 * math.Pi)
		speed := cfg.Fleet.SpawnSpeed * s.rng.Float64()
		turn := cfg.Derived.TurnRate.Scale(s.rng.Float64()*2 - 1)

		tr := components.Translation{At: quantity.Position{X: x, Y: y}}
		mo := components.Motion{V: quantity.Polar(quantity.MetersPerSecond(speed), heading)}
		att := components.Attitude{Heading: heading, Turn: turn}
		body := components.Body{
			DryMass: cfg.Derived.DryMass,
			Radius:  cfg.Derived.CraftRadius,
		}
		tank := components.Tank{
			Fuel:           cfg.Derived.FuelMass,
			SpecificEnergy: cfg.Derived.FuelEnergy,
		}
		eng := components.Engine{
			Power:    cfg.Derived.EnginePower,
			Thrust:   cfg.Derived.EngineThrust,
			Throttle: 1.0,
		}

		s.craftMapper.NewEntity(&tr, &mo, &att, &body, &tank, &eng)
	}
}

// Update runs one or more simulation steps based on the speed setting.
// Graphical mode only: it also processes input.
func (s *Sim) Update() {
	s.handleInput()

	if s.paused {
		return
	}
	for i := 0; i < s.speed; i++ {
		s.step()
	}
}

// UpdateHeadless runs the configured number of steps without touching
// raylib state.
func (s *Sim) UpdateHeadless() {
	for i := 0; i < s.stepsPerUpdate; i++ {
		s.step()
	}
}

// step runs a single tick.
func (s *Sim) step() {
	rep := s.propulsion.Update(s.dt)
	moved := s.kinematics.Update(s.dt)
	s.collector.RecordTick(moved, rep.BurnedEnergy, rep.ThrustWork)

	s.tick++
	s.flushTelemetry()
}

// flushTelemetry closes the stats window when due and writes it out.
func (s *Sim) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.snapshot())

	if s.logStats {
		stats.Log()
	}
	if s.output != nil {
		if err := s.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// snapshot samples the fleet for the closing window.
func (s *Sim) snapshot() telemetry.FleetSnapshot {
	var snap telemetry.FleetSnapshot

	query := s.craftFilter.Query()
	for query.Next() {
		_, mo, _, _, tank, _ := query.Get()

		snap.CraftCount++
		if tank.Fuel.IsZero() {
			snap.DryCount++
		}
		snap.Speeds = append(snap.Speeds, mo.V.Magnitude().Value)
		snap.TotalFuel = snap.TotalFuel.Add(tank.Fuel)
		snap.FuelEnergy = snap.FuelEnergy.Add(tank.Energy())
	}

	return snap
}

// Tick returns the current simulation tick.
func (s *Sim) Tick() int64 {
	return s.tick
}

// Close flushes and closes the output files.
func (s *Sim) Close() error {
	return s.output.Close()
}
