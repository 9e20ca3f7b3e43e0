// Package main provides CMA-ES tuning of the engine throttle schedule for
// maximum range on a single tank of fuel.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/phys/config"
	"github.com/pthm-cable/phys/quantity"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	segments := flag.Int("segments", 4, "Throttle schedule segments")
	maxSimSec := flag.Float64("max-sim", 600, "Simulated seconds per evaluation (cap)")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Load base config
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	model := rangeModel{cfg: config.Cfg()}
	maxSim := quantity.Seconds(*maxSimSec)

	dim := *segments
	initX := make([]float64, dim)
	for i := range initX {
		initX[i] = 0.5
	}

	// Open log file
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "range_m"}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("throttle_%d", i))
	}
	logWriter.Write(header)

	// Track evaluations
	evalCount := 0
	var bestRange quantity.Length
	var bestSchedule []float64
	startTime := time.Now()

	// Maximize range: minimize its negation.
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			dist := model.Range(x, maxSim)
			evalCount++

			if bestRange.Less(dist) {
				bestRange = dist
				bestSchedule = make([]float64, len(x))
				for i, v := range x {
					bestSchedule[i] = clamp01(v)
				}
			}

			// Log clamped values to CSV (these are the values actually used)
			row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.2f", dist.Value)}
			for _, v := range x {
				row = append(row, fmt.Sprintf("%.6f", clamp01(v)))
			}
			logWriter.Write(row)
			logWriter.Flush()

			fmt.Printf("Eval %d/%d: range=%.0f (best=%.0f)\n",
				evalCount, *maxEvals, dist, bestRange)

			return -dist.Value
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	fmt.Printf("Starting CMA-ES tuning with %d segments, population=%d, max_evals=%d\n",
		dim, popSize, *maxEvals)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// Use the best schedule found (may be from any evaluation, not just final)
	if bestSchedule == nil {
		bestSchedule = result.X
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n",
		evalCount, time.Since(startTime).Round(time.Second))
	fmt.Printf("Best range: %.0f\n", bestRange)

	fmt.Println("\nBest throttle schedule:")
	for i, v := range bestSchedule {
		fmt.Printf("  segment %d: %.4f\n", i, clamp01(v))
	}
}
