package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bubblescroll/internal/bubble"
	"github.com/san-kum/bubblescroll/internal/scenario"
	"github.com/spf13/cobra"
)

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}

	var records []scenario.Record
	if realtime {
		logs, err := openLog()
		if err != nil {
			return err
		}
		defer logs.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		fmt.Printf("replaying %s in real time (%v)\n", sc.Name, sc.Duration())
		err = scenario.Run(ctx, sc, cfg, logs.For("replay"), func(r scenario.Record) {
			records = append(records, r)
		})
		if err != nil {
			return err
		}
	} else {
		records = scenario.Simulate(sc, cfg)
	}
	if len(records) == 0 {
		return fmt.Errorf("no frames replayed")
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Printf("frames: %d\n\n", len(records))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tPROGRESS\tSCROLLING\tSTATE\tSIZE\tSCALE\tOPACITY\tENLARGED\tDROPLETS\t")
	for i, r := range records {
		changed := i > 0 && records[i-1].State != r.State
		if every > 1 && i%every != 0 && !changed && !r.BurstFired && i != len(records)-1 {
			continue
		}
		mark := ""
		if r.BurstFired {
			mark = "*"
		}
		fmt.Fprintf(w, "%v\t%.3f\t%v\t%s%s\t%.1f\t%.2f\t%.2f\t%d\t%d\t\n",
			r.T.Round(time.Millisecond), r.Progress, r.Scrolling, r.State, mark,
			r.Bubble.SizeRem, r.Bubble.Scale, r.Bubble.Opacity, r.Enlarged, r.Droplets)
	}
	w.Flush()

	diameter := make([]float64, len(records))
	opacity := make([]float64, len(records))
	for i, r := range records {
		if r.Bubble.Visible {
			diameter[i] = r.Bubble.SizeRem * r.Bubble.Scale
			opacity[i] = r.Bubble.Opacity
		}
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(diameter, asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption("diameter (rem)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(opacity, asciigraph.Height(6), asciigraph.Width(80), asciigraph.Caption("opacity")))

	if jsonOut != "" {
		if err := writeFile(jsonOut, func(f *os.File) error { return scenario.WriteJSON(f, sc, records) }); err != nil {
			return err
		}
	}
	if csvOut != "" {
		if err := writeFile(csvOut, func(f *os.File) error { return scenario.WriteCSV(f, records) }); err != nil {
			return err
		}
	}
	return nil
}

func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		return scenario.ScrollToEnd(20, 2*time.Second), nil
	}
	return scenario.Load(args[0])
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	results, err := scenario.Sweep(cmd.Context(), sc, scenario.PresetConfigs())
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n\n", sc.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tFIRST BURST\tBURSTS\tENLARGED\tPEAK DIAMETER\t")
	for _, r := range results {
		first := "never"
		if s := r.Summary["first_burst_s"]; s >= 0 {
			first = fmt.Sprintf("%.2fs", s)
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f%%\t%.1frem\t\n",
			r.Name, first, r.Summary["bursts"], r.Summary["enlarged_share"]*100, r.Summary["peak_diameter_rem"])
	}
	return w.Flush()
}

func plotCurves(cmd *cobra.Command, args []string) error {
	c := bubble.DefaultCurves()
	const n = 101
	plots := []struct {
		caption string
		data    []float64
	}{
		{"size (rem) vs progress", c.Size.Sample(0, 1, n)},
		{"scale vs progress", c.Scale.Sample(0, 1, n)},
		{"opacity vs progress", c.Opacity.Sample(0, 1, n)},
	}
	for _, p := range plots {
		fmt.Println(asciigraph.Plot(p.data, asciigraph.Height(8), asciigraph.Width(n), asciigraph.Caption(p.caption)))
		fmt.Println()
	}
	return nil
}
