package sweep

import (
	"context"
	"fmt"
	"math"
	"sort"

	"lifecanvas/pkg/core"
	"lifecanvas/pkg/life"

	"golang.org/x/sync/errgroup"
)

// Options describes a density survey: every density is simulated Trials
// times, each run on its own seeded universe.
type Options struct {
	Width     int
	Height    int
	Steps     int
	Trials    int
	Workers   int
	Seed      int64
	Densities []float64
	KeepFinal bool
}

// Result is the outcome of one run.
type Result struct {
	Density    float64
	Trial      int
	Seed       int64
	Initial    int
	Population int
	Generation int
	Extinct    bool
	Final      *life.Grid
}

// Summary aggregates the runs of one density.
type Summary struct {
	Density        float64
	Trials         int
	Extinctions    int
	MeanInitial    float64
	MeanPopulation float64
}

// Densities returns from, from+step, ... up to and including to.
func Densities(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return nil
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, math.Round((from+float64(i)*step)*1e6)/1e6)
	}
	return out
}

// Run simulates every (density, trial) pair. Runs are independent and
// distributed over at most Workers goroutines; results come back in
// density-major order.
func Run(ctx context.Context, o Options) ([]Result, error) {
	if o.Trials <= 0 {
		o.Trials = 1
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	results := make([]Result, len(o.Densities)*o.Trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range results {
		density := o.Densities[i/o.Trials]
		trial := i % o.Trials
		seed := o.Seed + int64(i)
		g.Go(func() error {
			res, err := simulate(ctx, o, density, seed)
			if err != nil {
				return fmt.Errorf("density %.3f trial %d: %w", density, trial, err)
			}
			res.Trial = trial
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, o Options, density float64, seed int64) (Result, error) {
	u, err := life.New(o.Width, o.Height, density, core.NewRNG(seed))
	if err != nil {
		return Result{}, err
	}
	res := Result{Density: density, Seed: seed, Initial: u.Grid().Population()}
	for step := 0; step < o.Steps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if u.Grid().Population() == 0 {
			res.Extinct = true
			break
		}
		u.Tick()
	}
	res.Population = u.Grid().Population()
	res.Extinct = res.Population == 0
	res.Generation = u.Generation()
	if o.KeepFinal {
		res.Final = u.Grid().Clone()
	}
	return res, nil
}

// Summarize groups results by density, in ascending density order.
func Summarize(results []Result) []Summary {
	byDensity := map[float64]*Summary{}
	for _, r := range results {
		s, ok := byDensity[r.Density]
		if !ok {
			s = &Summary{Density: r.Density}
			byDensity[r.Density] = s
		}
		s.Trials++
		s.MeanInitial += float64(r.Initial)
		s.MeanPopulation += float64(r.Population)
		if r.Extinct {
			s.Extinctions++
		}
	}
	out := make([]Summary, 0, len(byDensity))
	for _, s := range byDensity {
		s.MeanInitial /= float64(s.Trials)
		s.MeanPopulation /= float64(s.Trials)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Density < out[j].Density })
	return out
}
