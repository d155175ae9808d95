package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/export"
	"github.com/san-kum/golife/internal/metrics"
	"github.com/san-kum/golife/internal/orchestrator"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/replay"
	"github.com/san-kum/golife/internal/viz"
	"github.com/san-kum/golife/pkg/logging"
)

var (
	configFile  string
	preset      string
	catalogPath string
	theme       string
	multiplier  int
	delay       int
	jump        int
	gallery     int
	paused      bool
	logFile     string
	logLevel    string

	svgPath        string
	historySVGPath string
	jsonPath       string
	svgCellSize    int
)

// main runs the root command and exits with status 1 if it returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands; the root runs the editor when no
// subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "golife",
		Short:        "interactive Game of Life editor",
		SilenceUsage: true,
		RunE:         runEditor,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.StringVar(&catalogPath, "catalog", "", "pattern catalog (json or yaml)")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	rootCmd.Flags().IntVar(&multiplier, "multiplier", config.DefaultGridMultiplier, "grid size as a multiple of the terminal")
	rootCmd.Flags().IntVar(&delay, "delay", config.DefaultSimulationDelay, "milliseconds between generations")
	rootCmd.Flags().IntVar(&jump, "jump", config.DefaultCursorJump, "cells moved by tab and shift+tab")
	rootCmd.Flags().IntVar(&gallery, "gallery-width", config.DefaultGalleryWidth, "width of the pattern panel")
	rootCmd.Flags().BoolVar(&paused, "paused", false, "start with the simulation paused")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "print the pattern catalog",
		Args:  cobra.NoArgs,
		RunE:  listPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTHEME\tMULTIPLIER\tDELAY\tPAUSED")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%dms\t%v\n", name, p.Theme, p.GridMultiplier, p.SimulationDelay, p.StartPaused)
			}
			w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	replayCmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "run a scripted session without a terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().StringVar(&svgPath, "svg", "", "write the final grid as svg")
	replayCmd.Flags().StringVar(&historySVGPath, "history-svg", "", "write the population history as svg")
	replayCmd.Flags().StringVar(&jsonPath, "json", "", "write a json summary")
	replayCmd.Flags().IntVar(&svgCellSize, "cell-size", 8, "svg pixels per cell")

	rootCmd.AddCommand(patternsCmd, presetsCmd, initCmd, replayCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("catalog") {
		cfg.Catalog = catalogPath
	}
	if f.Changed("theme") {
		cfg.Theme = theme
	}
	if f.Changed("multiplier") {
		cfg.GridMultiplier = multiplier
	}
	if f.Changed("delay") {
		cfg.SimulationDelay = delay
	}
	if f.Changed("jump") {
		cfg.CursorJump = jump
	}
	if f.Changed("gallery-width") {
		cfg.GalleryWidth = gallery
	}
	if f.Changed("paused") {
		cfg.StartPaused = paused
	}
	if f.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging sends logs to the configured file, or to fallback when no
// file is set. It returns a function that closes the file.
func setupLogging(cfg *config.Config, fallback *os.File) (func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogFile == "" {
		if fallback == nil {
			logging.Discard()
		} else {
			logging.InitForCLI(level, fallback)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.InitForCLI(level, f)
	return func() { f.Close() }, nil
}

// preflight loads the catalog and reports setup problems on w while the
// terminal still belongs to the user.
func preflight(cfg *config.Config, w io.Writer) (pattern.Catalog, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(level, w)
	if !viz.HasTheme(cfg.Theme) {
		logging.Warn("tui", "unknown theme %q, using %s", cfg.Theme, config.DefaultTheme)
	}
	return pattern.LoadOrDefault(cfg.Catalog), nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !viz.IsTerminal() {
		return fmt.Errorf("stdout is not a terminal")
	}
	catalog, err := preflight(cfg, os.Stderr)
	if err != nil {
		return err
	}
	// Nothing may write to the screen while the program owns it.
	closeLog, err := setupLogging(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	renderer := viz.NewRenderer(viz.GetTheme(cfg.Theme), cfg.GalleryWidth)

	opts := orchestrator.Options{
		GridMultiplier:  cfg.GridMultiplier,
		MaxGridWidth:    cfg.MaxGridWidth,
		MaxGridHeight:   cfg.MaxGridHeight,
		SimulationDelay: cfg.SimulationDelayDuration(),
		DelayStep:       cfg.DelayStepDuration(),
		PollInterval:    cfg.PollIntervalDuration(),
		CursorJump:      cfg.CursorJump,
		PanStep:         cfg.PanStep,
		StartPaused:     cfg.StartPaused,
		Chrome:          renderer.Chrome(),
		Metrics:         metrics.Defaults(),
	}
	orch, err := orchestrator.New(catalog, viz.StdoutSize{}, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	return viz.Run(ctx, orch, renderer)
}

func listPatterns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	catalog := pattern.Default()
	if cfg.Catalog != "" {
		c, err := pattern.Load(cfg.Catalog)
		if err != nil {
			return err
		}
		catalog = c
	}

	out := cmd.OutOrStdout()
	for _, t := range catalog {
		fmt.Fprintf(out, "%s\n", t.Name)
		for i, p := range t.Patterns {
			key := " "
			if i < 9 {
				key = fmt.Sprint(i + 1)
			}
			fmt.Fprintf(out, "  %s  %s %s\n", key, p.Name, p.Size())
			for _, line := range strings.Split(strings.TrimSuffix(p.Preview(), "\n"), "\n") {
				fmt.Fprintf(out, "      %s\n", line)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := replay.Run(ctx, script, pattern.LoadOrDefault(cfg.Catalog))
	if err != nil {
		return err
	}
	if err := res.Report(os.Stdout); err != nil {
		return err
	}

	if svgPath != "" {
		svg := export.GridToSVG(res.Frame.Grid, svgCellSize, export.DefaultColors)
		if err := os.WriteFile(svgPath, []byte(svg), 0o644); err != nil {
			return err
		}
		fmt.Printf("\nsaved %s\n", svgPath)
	}
	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, export.NewSummary(res.Frame)); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", jsonPath)
	}
	if historySVGPath != "" {
		svg := export.HistoryToSVG(res.Frame.History, 800, 200, export.DefaultColors)
		if svg == "" {
			logging.Warn("replay", "not enough generations for %s", historySVGPath)
		} else if err := os.WriteFile(historySVGPath, []byte(svg), 0o644); err != nil {
			return err
		} else {
			fmt.Printf("saved %s\n", historySVGPath)
		}
	}
	return nil
}
