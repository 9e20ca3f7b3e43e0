package telemetry

import "github.com/pthm-cable/phys/quantity"

// FleetSnapshot is the state sampled at a window boundary.
type FleetSnapshot struct {
	CraftCount int
	DryCount   int
	Speeds     []float64 // m/s per craft
	TotalFuel  quantity.Mass
	FuelEnergy quantity.Energy
}

// Collector accumulates per-tick samples and produces WindowStats at
// window boundaries.
type Collector struct {
	windowSec   float64
	windowTicks int64
	dt          quantity.Time

	windowStartTick int64

	// Window accumulators
	distance quantity.Length
	work     quantity.Energy

	// Run accumulator
	burned quantity.Energy
}

// NewCollector creates a collector flushing every windowSec simulation
// seconds with the given tick duration.
func NewCollector(windowSec float64, dt quantity.Time) *Collector {
	ticks := int64(windowSec / dt.Value)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowSec:   windowSec,
		windowTicks: ticks,
		dt:          dt,
	}
}

// RecordTick folds one tick's aggregates into the current window.
func (c *Collector) RecordTick(moved quantity.Length, burned, work quantity.Energy) {
	c.distance = c.distance.Add(moved)
	c.work = c.work.Add(work)
	c.burned = c.burned.Add(burned)
}

// ShouldFlush reports whether the window ending at tick is complete.
func (c *Collector) ShouldFlush(tick int64) bool {
	return tick-c.windowStartTick >= c.windowTicks
}

// Flush closes the current window and starts the next one.
func (c *Collector) Flush(tick int64, snap FleetSnapshot) WindowStats {
	mean, p10, p50, p90 := Distribution(snap.Speeds)

	stats := WindowStats{
		WindowStartTick:  c.windowStartTick,
		WindowEndTick:    tick,
		SimTimeSec:       c.dt.Scale(float64(tick)).Value,
		CraftCount:       snap.CraftCount,
		DryCount:         snap.DryCount,
		SpeedMean:        mean,
		SpeedP10:         p10,
		SpeedP50:         p50,
		SpeedP90:         p90,
		TotalFuelKg:      snap.TotalFuel.Value,
		TotalFuelEnergyJ: snap.FuelEnergy.Value,
		BurnedEnergyJ:    c.burned.Value,
		ThrustWorkJ:      c.work.Value,
		DistanceM:        c.distance.Value,
	}

	c.windowStartTick = tick
	c.distance = quantity.Length{}
	c.work = quantity.Energy{}

	return stats
}
