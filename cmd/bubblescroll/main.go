package main

import (
	"fmt"
	"os"

	"github.com/san-kum/bubblescroll/internal/config"
	"github.com/san-kum/bubblescroll/internal/gui"
	"github.com/san-kum/bubblescroll/internal/logging"
	"github.com/san-kum/bubblescroll/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logFile    string
	logLevel   string
	frameRate  int
	theme      string
	realtime   bool
	every      int
	jsonOut    string
	csvOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bubblescroll",
		Short:        "scroll-driven bubble page",
		SilenceUsage: true,
		RunE:         runTerminal,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "terminal theme")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the page in a window",
		RunE:  runWindow,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [scenario.yaml]",
		Short: "replay a scroll scenario without a display",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().BoolVar(&realtime, "realtime", false, "replay at wall-clock speed")
	replayCmd.Flags().IntVar(&every, "every", 10, "print every nth frame")
	replayCmd.Flags().StringVar(&jsonOut, "json", "", "also write the frames as json to this file")
	replayCmd.Flags().StringVar(&csvOut, "csv", "", "also write the frames as csv to this file")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario.yaml]",
		Short: "replay a scenario under every preset and compare",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "plot the bubble curves against scroll progress",
		RunE:  plotCurves,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the current configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "bubblescroll.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(windowCmd, replayCmd, sweepCmd, curvesCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig starts from a preset or the defaults, layers the config file
// over it and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openLog() (*logging.Logger, error) {
	return logging.Open(logging.Options{Path: logFile, Level: logLevel})
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logs, err := openLog()
	if err != nil {
		return err
	}
	defer logs.Close()

	log := logs.For("viz")
	log.Info().Str("theme", cfg.Theme).Int("fps", cfg.FPS).Msg("starting terminal page")
	return viz.Run(viz.Options{Config: cfg, Logger: log})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logs, err := openLog()
	if err != nil {
		return err
	}
	defer logs.Close()

	gui.Run(cfg, logs.For("gui"))
	return nil
}
