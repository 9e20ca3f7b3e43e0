// Package telemetry aggregates simulation samples into windowed statistics
// and writes them to CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window. Fields are
// raw floats in the unit named by the csv tag: telemetry is a boundary
// where quantities leave the typed world.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Fleet state at window end
	CraftCount int `csv:"craft"`
	DryCount   int `csv:"dry"` // craft with empty tanks

	// Speed distribution at window end (m/s)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Energy accounting (for conservation validation)
	TotalFuelKg      float64 `csv:"total_fuel_kg"`
	TotalFuelEnergyJ float64 `csv:"total_fuel_energy_j"`
	BurnedEnergyJ    float64 `csv:"burned_energy_j"` // cumulative fuel energy spent

	// Work done by thrust during the window (J)
	ThrustWorkJ float64 `csv:"thrust_work_j"`

	// Distance travelled by the fleet during the window (m)
	DistanceM float64 `csv:"distance_m"`
}

// Distribution summarizes a sample set. Values need not be sorted.
func Distribution(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// Log emits the window through slog.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"craft", s.CraftCount,
		"dry", s.DryCount,
		"speed_mean", s.SpeedMean,
		"speed_p50", s.SpeedP50,
		"total_fuel_kg", s.TotalFuelKg,
		"burned_energy_j", s.BurnedEnergyJ,
		"distance_m", s.DistanceM,
	)
}
