package forestfire

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"forestfire/internal/core"
)

// SweepConfig describes a density sweep: Trials independent forests of the
// given Size for every density, each run for at most Steps steps.
type SweepConfig struct {
	Size      int
	Steps     int
	Trials    int
	Densities []float64
	Seed      int64
}

// SweepResult aggregates the trials run at one density.
type SweepResult struct {
	Density    float64
	Trials     int
	Percolated int
	MeanBurned float64
	MeanSteps  float64
}

// SpanningProbability is the fraction of trials whose fire reached the
// bottom row.
func (r SweepResult) SpanningProbability() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Percolated) / float64(r.Trials)
}

// Densities returns the inclusive range [lo, hi] sampled every step.
func Densities(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo {
		return []float64{lo}
	}
	count := int((hi-lo)/step+1e-9) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

type sweepJob struct {
	density int
	trial   int
}

type sweepOutcome struct {
	density    int
	percolated bool
	burned     float64
	steps      int
}

// Sweep runs every trial on a pool of workers. Each trial owns its engine
// and seed, so results do not depend on the worker count.
func Sweep(cfg SweepConfig, workers int) ([]SweepResult, error) {
	if err := (Config{Size: cfg.Size, Steps: cfg.Steps}).Validate(); err != nil {
		return nil, err
	}
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials %d must be positive", ErrInvalidParameter, cfg.Trials)
	}
	for _, p := range cfg.Densities {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidParameter, p)
		}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan sweepJob)
	outcomes := make(chan sweepOutcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				outcomes <- runTrial(cfg, job)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	go func() {
		for d := range cfg.Densities {
			for trial := 0; trial < cfg.Trials; trial++ {
				jobs <- sweepJob{density: d, trial: trial}
			}
		}
		close(jobs)
	}()

	results := make([]SweepResult, len(cfg.Densities))
	for i, p := range cfg.Densities {
		results[i].Density = p
	}
	for out := range outcomes {
		res := &results[out.density]
		res.Trials++
		if out.percolated {
			res.Percolated++
		}
		res.MeanBurned += out.burned
		res.MeanSteps += float64(out.steps)
	}
	for i := range results {
		if n := float64(results[i].Trials); n > 0 {
			results[i].MeanBurned /= n
			results[i].MeanSteps /= n
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Density < results[j].Density })
	return results, nil
}

func runTrial(cfg SweepConfig, job sweepJob) sweepOutcome {
	seed := cfg.Seed + int64(job.density*cfg.Trials+job.trial)
	// Parameters were validated by Sweep.
	sim, _ := New(cfg.Size, cfg.Densities[job.density], core.NewRNG(seed).Source())
	frames := sim.Run(cfg.Steps)
	final := frames[len(frames)-1]
	return sweepOutcome{
		density:    job.density,
		percolated: Percolated(final),
		burned:     final.Census().BurnedFraction(),
		steps:      sim.Steps(),
	}
}
