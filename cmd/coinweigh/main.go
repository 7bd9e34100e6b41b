// Command coinweigh prints an optimal weighing strategy for the
// counterfeit-coin puzzle.
//
//	coinweigh -n 12          # adaptive decision tree
//	coinweigh -n 12 --static # fixed schedule of weighings
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/coinweigh"
	"github.com/katalvlaran/coinweigh/config"
	"github.com/katalvlaran/coinweigh/render"
	"github.com/katalvlaran/coinweigh/sequential"
)

// app holds the flag values and the logger of one command invocation.
type app struct {
	configPath    string
	coins         int
	static        bool
	quiet         bool
	verbose       bool
	parallelDepth int
	format        string
	color         string

	level  zap.AtomicLevel
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{level: zap.NewAtomicLevelAt(zapcore.WarnLevel), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "coinweigh",
		Short: "Solve the counterfeit-coin puzzle with a balance scale",
		Long: `coinweigh finds the fewest weighings that identify the single fake coin
among n coins, and whether it is heavier or lighter, or that all coins are
genuine.

By default the strategy is adaptive: every weighing may depend on earlier
results and the output is a decision tree. With --static all weighings are
fixed in advance and the output is a ternary code per coin.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			zc.Level = a.level
			if a.verbose {
				a.level.SetLevel(zapcore.DebugLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.run,
	}

	f := cmd.Flags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.IntVarP(&a.coins, "coins", "n", 12, "number of coins (at least 3)")
	f.BoolVarP(&a.static, "static", "s", false, "fix all weighings in advance")
	f.BoolVarP(&a.quiet, "quiet", "q", false, "print only the summary")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log every weighing")
	f.IntVar(&a.parallelDepth, "parallel", 0, "solve the top levels of the tree concurrently")
	f.StringVar(&a.format, "format", string(config.FormatText), "output format: text or yaml")
	f.StringVar(&a.color, "color", string(config.ColorAuto), "colorize text output: auto, always or never")

	return cmd
}

// settings merges the configuration file with the flags set explicitly.
func (a *app) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("coins") {
		cfg.Coins = a.coins
	}
	if f.Changed("static") {
		cfg.Mode = config.ModeSequential
		if a.static {
			cfg.Mode = config.ModeStatic
		}
	}
	if f.Changed("quiet") {
		cfg.Quiet = a.quiet
	}
	if f.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if f.Changed("parallel") {
		cfg.ParallelDepth = a.parallelDepth
	}
	if f.Changed("format") {
		cfg.Format = config.Format(a.format)
	}
	if f.Changed("color") {
		cfg.Color = config.Color(a.color)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	cfg, err := a.settings(cmd)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		a.level.SetLevel(zapcore.DebugLevel)
	}

	out := cmd.OutOrStdout()
	p := render.NewPrinter(out, render.WithColor(useColor(cfg.Color, out)))
	a.logger.Debug("solving", zap.Int("coins", cfg.Coins), zap.String("mode", string(cfg.Mode)))

	start := time.Now()
	switch cfg.Mode {
	case config.ModeStatic:
		return a.runStatic(cfg, p, out, start)
	default:
		return a.runSequential(cfg, p, out, start)
	}
}

func (a *app) runSequential(cfg *config.Config, p *render.Printer, out io.Writer, start time.Time) error {
	res, err := coinweigh.SolveSequential(cfg.Coins,
		sequential.WithLogger(a.logger),
		sequential.WithParallel(cfg.ParallelDepth))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	a.logger.Debug("solved", zap.Int("weighings", res.Depth), zap.Duration("elapsed", elapsed))

	if cfg.Format == config.FormatYAML {
		return render.YAML(out, render.NewSequentialDocument(res))
	}
	if !cfg.Quiet {
		if err := p.Sequential(res); err != nil {
			return err
		}
	}
	return p.Summary(res.Depth, elapsed)
}

func (a *app) runStatic(cfg *config.Config, p *render.Printer, out io.Writer, start time.Time) error {
	tbl, err := coinweigh.SolveStatic(cfg.Coins)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	a.logger.Debug("solved", zap.Int("weighings", tbl.Weighings), zap.Duration("elapsed", elapsed))

	if cfg.Format == config.FormatYAML {
		doc, err := render.NewStaticDocument(tbl)
		if err != nil {
			return err
		}
		return render.YAML(out, doc)
	}
	if !cfg.Quiet {
		if err := p.Static(tbl); err != nil {
			return err
		}
	}
	return p.Summary(tbl.Weighings, elapsed)
}

// useColor resolves the color setting; auto colors only terminals.
func useColor(c config.Color, w io.Writer) bool {
	switch c {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "coinweigh:", err)
		os.Exit(1)
	}
}
