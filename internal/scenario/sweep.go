package scenario

import (
	"context"
	"runtime"
	"sort"

	"github.com/san-kum/bubblescroll/internal/config"
	"golang.org/x/sync/errgroup"
)

// Result is one configuration's replay of a scenario.
type Result struct {
	Name    string
	Records []Record
	Summary map[string]float64
}

// Sweep replays sc once per configuration, in parallel, and returns the
// results sorted by name.
func Sweep(ctx context.Context, sc *Scenario, cfgs map[string]*config.Config) ([]Result, error) {
	names := make([]string, 0, len(cfgs))
	for name := range cfgs {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records := Simulate(sc, cfgs[name])
			results[i] = Result{
				Name:    name,
				Records: records,
				Summary: Summarize(records, DefaultMetrics()...),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// PresetConfigs returns every preset by name.
func PresetConfigs() map[string]*config.Config {
	out := make(map[string]*config.Config)
	for _, name := range config.ListPresets() {
		out[name] = config.GetPreset(name)
	}
	return out
}
