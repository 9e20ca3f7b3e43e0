package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/phys/quantity"
)

const eps = 1e-9

func TestDistribution(t *testing.T) {
	values := []float64{10, 1, 2, 9, 3, 8, 4, 7, 5, 6}

	mean, p10, p50, p90 := Distribution(values)

	if math.Abs(mean-5.5) > eps {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	if math.Abs(p10-1) > eps {
		t.Errorf("p10 = %v, want 1", p10)
	}
	if math.Abs(p50-5) > eps {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if math.Abs(p90-9) > eps {
		t.Errorf("p90 = %v, want 9", p90)
	}
}

func TestDistributionEmpty(t *testing.T) {
	mean, p10, p50, p90 := Distribution(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("empty sample should summarize to zeros, got %v %v %v %v", mean, p10, p50, p90)
	}
}

func TestDistributionLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	Distribution(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestCollectorWindowing(t *testing.T) {
	dt := quantity.Seconds(0.5)
	c := NewCollector(1.0, dt) // two ticks per window

	if c.ShouldFlush(1) {
		t.Error("window should not be complete after one tick")
	}

	c.RecordTick(quantity.Meters(3), quantity.Joules(10), quantity.Joules(4))
	c.RecordTick(quantity.Meters(2), quantity.Joules(10), quantity.Joules(4))

	if !c.ShouldFlush(2) {
		t.Fatal("window should be complete after two ticks")
	}

	snap := FleetSnapshot{
		CraftCount: 2,
		DryCount:   1,
		Speeds:     []float64{4, 6},
		TotalFuel:  quantity.Kilograms(50),
		FuelEnergy: quantity.Joules(2000),
	}
	stats := c.Flush(2, snap)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 2 {
		t.Errorf("window bounds = [%d, %d], want [0, 2]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-1.0) > eps {
		t.Errorf("sim time = %v, want 1.0", stats.SimTimeSec)
	}
	if math.Abs(stats.DistanceM-5) > eps {
		t.Errorf("distance = %v, want 5", stats.DistanceM)
	}
	if math.Abs(stats.ThrustWorkJ-8) > eps {
		t.Errorf("work = %v, want 8", stats.ThrustWorkJ)
	}
	if math.Abs(stats.BurnedEnergyJ-20) > eps {
		t.Errorf("burned = %v, want 20", stats.BurnedEnergyJ)
	}
	if math.Abs(stats.SpeedMean-5) > eps {
		t.Errorf("speed mean = %v, want 5", stats.SpeedMean)
	}
	if stats.CraftCount != 2 || stats.DryCount != 1 {
		t.Errorf("fleet counts = %d/%d, want 2/1", stats.CraftCount, stats.DryCount)
	}

	// Window accumulators reset; burned energy is cumulative.
	c.RecordTick(quantity.Meters(1), quantity.Joules(5), quantity.Joules(2))
	c.RecordTick(quantity.Meters(1), quantity.Joules(5), quantity.Joules(2))
	stats = c.Flush(4, snap)

	if math.Abs(stats.DistanceM-2) > eps {
		t.Errorf("second window distance = %v, want 2", stats.DistanceM)
	}
	if math.Abs(stats.ThrustWorkJ-4) > eps {
		t.Errorf("second window work = %v, want 4", stats.ThrustWorkJ)
	}
	if math.Abs(stats.BurnedEnergyJ-30) > eps {
		t.Errorf("cumulative burned = %v, want 30", stats.BurnedEnergyJ)
	}
	if stats.WindowStartTick != 2 || stats.WindowEndTick != 4 {
		t.Errorf("second window bounds = [%d, %d], want [2, 4]", stats.WindowStartTick, stats.WindowEndTick)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// A window shorter than one tick still flushes every tick.
	c := NewCollector(0.001, quantity.Seconds(0.02))
	if !c.ShouldFlush(1) {
		t.Error("sub-tick window should flush every tick")
	}
}
