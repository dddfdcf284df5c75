package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/advent/assets"
	"svw.info/advent/internal/almanac"
	"svw.info/advent/internal/config"
	"svw.info/advent/internal/hint"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/logging"
	"svw.info/advent/internal/ports"
	"svw.info/advent/internal/scratchcards"
	"svw.info/advent/internal/springs"
	"svw.info/advent/internal/trebuchet"
	"svw.info/advent/internal/usecase"
)

// app carries the global flags and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	verbose    bool
	inputDir   string
	counter    string
	workers    int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "advent",
		Short: "Advent puzzle solvers",
		Long: `advent solves the puzzles of the calendar from their text inputs.

The springs command counts the arrangements of damaged springs in condition
records, one record per line, e.g. "???.### 1,1,3", and prints the total.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&a.inputDir, "input-dir", "", "directory with day_NN.txt inputs (default: embedded)")
	pf.StringVar(&a.counter, "counter", config.CounterPruned, "arrangement counter: pruned|brute")
	pf.IntVar(&a.workers, "workers", 1, "records counted concurrently")

	root.AddCommand(
		newSpringsCmd(a),
		newCountCmd(a),
		newVerifyCmd(a),
		newDayCmd(a),
	)
	return root
}

// setup loads the config, applies explicitly set flags over it and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if flags.Changed("counter") {
		cfg.Counter = a.counter
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cfg, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configured",
		zap.String("counter", cfg.Counter),
		zap.Int("workers", cfg.Workers),
		zap.String("input_dir", cfg.InputDir),
	)
	return nil
}

func (a *app) newCounter() ports.Counter {
	if a.cfg.Counter == config.CounterBrute {
		return springs.NewBruteForceCounter()
	}
	return springs.NewPrunedCounter(a.logger.Named("counter"))
}

func (a *app) newAggregator() *springs.Aggregator {
	return springs.NewAggregator(a.newCounter(), a.cfg.Workers, a.logger.Named("aggregator"))
}

// service wires counters and solvers into the use cases.
func (a *app) service() *usecase.Service {
	c := a.newCounter()
	return usecase.NewService(c, hint.NewForced(c), storage.NewFS(a.cfg.InputDir, assets.Inputs()),
		trebuchet.NewSolver(),
		scratchcards.NewSolver(),
		almanac.NewSolver(),
		springs.NewSolver(a.newAggregator()),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "advent:", err)
		os.Exit(1)
	}
}
