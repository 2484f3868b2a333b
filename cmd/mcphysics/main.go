package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/analysis"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/config"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/energy"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/statespace"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/store"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/sweep"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	mass     float64
	dt       float64
	atTime   float64
	perturb  float64
	workers  int
	jsonOut  string
	csvOut   string
	count    int
	sampleDt float64
	axis     string
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// main registers the subcommands and exits with status 1 if one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "mcphysics",
		Short:         "energy-penalty residuals for implicit particle integration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file path (yaml), read over --preset when both are given")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset scenario")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "evaluate the position-velocity term for one step of the reference trajectory",
		RunE:  runCheck,
	}
	checkCmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass scale")
	checkCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	checkCmd.Flags().Float64Var(&atTime, "time", 0, "start of the step")
	checkCmd.Flags().Float64Var(&perturb, "perturb", 0, "offset added to every candidate position component")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure the term's error against the exact trajectory over a range of timesteps",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass scale")
	sweepCmd.Flags().Float64Var(&atTime, "time", 0, "start of the step")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = one per cpu)")
	sweepCmd.Flags().StringVar(&jsonOut, "json", "", "write result as json to path ('-' for stdout)")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "export trajectory samples as csv",
		RunE:  runSample,
	}
	sampleCmd.Flags().StringVar(&csvOut, "out", "", "output path (default stdout)")
	sampleCmd.Flags().IntVar(&count, "count", config.DefaultSampleCount, "number of samples")
	sampleCmd.Flags().Float64Var(&sampleDt, "dt", config.DefaultSampleDt, "sample interval")
	sampleCmd.Flags().Float64Var(&atTime, "time", 0, "first sample time")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "frequency analysis of one position axis",
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().StringVar(&axis, "axis", "x", "position axis (x, y or z)")
	spectrumCmd.Flags().IntVar(&count, "count", config.DefaultSampleCount, "number of samples")
	spectrumCmd.Flags().Float64Var(&sampleDt, "dt", config.DefaultSampleDt, "sample interval")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(viz.Section("presets"))
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(checkCmd, sweepCmd, sampleCmd, spectrumCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.StatusFail.Render("error:"), err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		logger.Debug("applied preset", "preset", preset)
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile, "preset", preset)
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Mass = mass
	}
	if flags.Changed("time") {
		cfg.Time = atTime
	}
	if cmd.Name() == "check" && flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("count") {
		cfg.Samples.Count = count
	}
	if cmd.Name() != "check" && flags.Changed("dt") {
		cfg.Samples.Dt = sampleDt
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("scenario", "mass", cfg.Mass, "dt", cfg.Dt, "time", cfg.Time,
		"we", cfg.Trajectory.We, "wh", cfg.Trajectory.Wh)
	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p, err := cfg.Particle()
	if err != nil {
		return err
	}

	layout := statespace.NewLayout()
	position, velocity := layout.Vector(3), layout.Vector(3)
	term, err := energy.NewPositionVelocity(cfg.Mass, position, velocity)
	if err != nil {
		return err
	}

	n := layout.Len()
	before := make([]float64, n)
	candidate := make([]float64, n)
	if err := sweep.Sample(p, cfg.Time, position, velocity, before); err != nil {
		return err
	}
	if err := sweep.Sample(p, cfg.Time+cfg.Dt, position, velocity, candidate); err != nil {
		return err
	}
	for i := position.Offset(); i < position.Offset()+position.Dimension(); i++ {
		candidate[i] += perturb
	}

	grad := make([]float64, n)
	e, err := term.Evaluate(grad, before, candidate, cfg.Dt)
	if err != nil {
		return err
	}

	fmt.Println(viz.Section("position-velocity check"))
	fmt.Println(viz.Metric("mass", fmt.Sprintf("%g", cfg.Mass), 8))
	fmt.Println(viz.Metric("step", fmt.Sprintf("%g -> %g", cfg.Time, cfg.Time+cfg.Dt), 8))
	fmt.Println(viz.Metric("error", fmt.Sprintf("%.6e", e), 8))

	// Position and velocity are three-vectors, so their gradient blocks can
	// be read back as spatial vectors.
	for _, block := range []struct {
		label  string
		offset int
	}{
		{"|de/dx|", position.Offset()},
		{"|de/dv|", velocity.Offset()},
	} {
		m, err := statespace.NewPoint3(block.offset)
		if err != nil {
			return err
		}
		g, err := m.ToObject(grad)
		if err != nil {
			return err
		}
		fmt.Println(viz.Metric(block.label, fmt.Sprintf("%.6e", r3.Norm(g)), 8))
	}
	fmt.Println()

	labels := []string{"x", "y", "z", "vx", "vy", "vz"}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tQUANTITY\tBEFORE\tCANDIDATE\tGRADIENT")
	for i := range grad {
		fmt.Fprintf(w, "%d\t%s\t%.6f\t%.6f\t%.6e\n", i, labels[i], before[i], candidate[i], grad[i])
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p, err := cfg.Particle()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cfg.SweepOptions()
	opts.Workers = workers
	result, err := sweep.Run(ctx, p, opts)
	if err != nil {
		return err
	}
	logger.Debug("sweep complete", "points", len(result.Points))

	if jsonOut == "-" {
		return store.EncodeJSON(os.Stdout, result)
	}

	fmt.Println(viz.Section("convergence sweep"))
	fmt.Println(viz.LogPlot(result.Errors(), "log10(error) vs step (small dt to large dt)"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tERROR\t|GRADIENT|")
	for _, pt := range result.Points {
		fmt.Fprintf(w, "%.4e\t%.4e\t%.4e\n", pt.Dt, pt.Error, pt.GradientNorm)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(viz.Metric("|gradient| trend", viz.Sparkline(result.GradientNorms(), 40), 16))
	fmt.Println(viz.Metric("|total gradient|", fmt.Sprintf("%.4e", floats.Norm(result.TotalGradient, 2)), 16))
	fmt.Println()

	order, err := result.Order()
	if err != nil {
		fmt.Println(viz.Subtle.Render("order: trajectory integrates exactly (no non-zero errors)"))
	} else {
		fmt.Println(viz.Metric("order", fmt.Sprintf("%.3f", order), 6),
			viz.Status(math.Abs(order-4) < 0.5, "ok (expected 4)", "unexpected (expected 4)"))
	}

	if jsonOut != "" {
		if err := store.ExportJSON(jsonOut, result); err != nil {
			return err
		}
		logger.Info("wrote sweep result", "path", jsonOut)
	}

	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p, err := cfg.Particle()
	if err != nil {
		return err
	}

	out := os.Stdout
	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := store.WriteSamplesCSV(out, p, cfg.Time, cfg.Samples.Dt, cfg.Samples.Count); err != nil {
		return err
	}
	if csvOut != "" {
		logger.Info("wrote samples", "path", csvOut, "count", cfg.Samples.Count)
	}
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ax, err := analysis.ParseAxis(axis)
	if err != nil {
		return err
	}

	p, err := cfg.Particle()
	if err != nil {
		return err
	}

	data := analysis.SampleAxis(p, ax, cfg.Time, cfg.Samples.Dt, cfg.Samples.Count)
	freq, err := analysis.DominantFrequency(data, cfg.Samples.Dt)
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(analysis.Window(data))
	plotData := ps[:max(len(ps)/4, 1)]

	fmt.Println(viz.Section("spectrum"))
	fmt.Println(viz.Plot(plotData, fmt.Sprintf("power spectrum (%s)", ax)))
	fmt.Println()
	fmt.Println(viz.Metric("dominant frequency", fmt.Sprintf("%.3f hz", freq), 18))

	expected := math.Abs(cfg.Trajectory.Wh) / (2 * math.Pi)
	if cfg.Trajectory.IsOscillating() && expected > 0 {
		resolution := 1 / (float64(cfg.Samples.Count) * cfg.Samples.Dt)
		fmt.Println(viz.Metric("expected", fmt.Sprintf("%.3f hz", expected), 18),
			viz.Status(math.Abs(freq-expected) <= resolution, "ok", "mismatch"))
	}
	if freq > 0 {
		fmt.Println(viz.Metric("period", fmt.Sprintf("%.3f s", 1/freq), 18))
	}

	return nil
}
