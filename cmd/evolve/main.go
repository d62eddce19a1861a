package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"palga/internal/config"
	"palga/internal/eval"
	"palga/internal/evolve"
	"palga/internal/ga"
	"palga/internal/logging"
)

var (
	configPath  string
	generations int
	seed        int64
	logLevel    string
	logFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "evolve",
	Short: "Evolve palindromic chromosomes with a genetic algorithm",
	Long: `evolve runs the generation loop: random initial population, ranking by
fitness, tournament selection, crossover with mutation and elitism.
Per-generation summaries go to CSV and JSONL run files.`,
	SilenceUsage: true,
	RunE:         runEvolve,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file (defaults when empty)")
	rootCmd.Flags().IntVar(&generations, "generations", 200, "number of generations to run")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config when non-zero)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func runEvolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger := logging.NewSlog(os.Stderr, cfg.Logging.Level, logFormat)
	slog.SetDefault(logger)

	logger.Info("starting run",
		"config", configPath,
		"seed", cfg.Seed,
		"population", cfg.GA.Population,
		"initial_length", cfg.GA.InitialLength,
		"max_length", cfg.GA.MaxLength,
		"alphabet", cfg.GA.Alphabet,
		"mutation_rate", cfg.GA.MutationRate,
		"mutation_mode", cfg.GA.MutationMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rng := rand.New(rand.NewSource(cfg.Seed))
	engine, err := evolve.NewEngine(cfg.GA, rng, logger)
	if err != nil {
		return err
	}
	opts := engine.Options()

	evaluator := eval.NewEvaluator(opts, cfg.Eval.Workers)

	runLog, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath, logger)
	if err != nil {
		return fmt.Errorf("create run logger: %w", err)
	}
	if err := runLog.Init(); err != nil {
		return fmt.Errorf("init run logger: %w", err)
	}
	defer func() {
		if err := runLog.Close(); err != nil {
			logger.Warn("closing run logs", "err", err)
		}
	}()

	var bestEver *ga.Individual
	var bestGen int
	lastGen := 0
	start := time.Now()

	observe := func(gen int, pop ga.Population) error {
		lastGen = gen
		stats, err := evaluator.Evaluate(ctx, pop)
		if err != nil {
			return err
		}

		if cfg.Logging.EveryGenSummary || gen%10 == 0 || gen == 1 || gen == generations {
			if err := runLog.LogGeneration(logging.NewGenerationSummary(gen, pop, stats, opts)); err != nil {
				return fmt.Errorf("log generation %d: %w", gen, err)
			}
		}

		if bestEver == nil || pop[0].FitnessWith(opts) > bestEver.FitnessWith(opts) {
			bestEver = pop[0].Clone()
			bestGen = gen
		}

		if gen%10 == 0 && cfg.Logging.TopNDebug > 0 && logger.Enabled(ctx, slog.LevelDebug) {
			logging.LogTopK(os.Stderr, pop, cfg.Logging.TopNDebug, opts)
		}

		if cfg.Logging.SaveChampionEvery > 0 && gen%cfg.Logging.SaveChampionEvery == 0 {
			path := filepath.Join(cfg.Logging.ArtifactsDir, fmt.Sprintf("champion_gen%d.json", gen))
			if err := logging.SaveChampion(path, pop[0], gen, cfg.GA.Alphabet, opts); err != nil {
				logger.Warn("failed to save champion", "path", path, "err", err)
			}
		}
		return nil
	}

	_, err = engine.Run(ctx, generations, observe)
	switch {
	case errors.Is(err, evolve.ErrTargetReached):
	case errors.Is(err, context.Canceled):
		logger.Warn("run interrupted", "generation", lastGen)
	case err != nil:
		return err
	}

	logger.Info("run complete", "generations", lastGen, "elapsed", time.Since(start).String())
	if bestEver == nil {
		return nil
	}

	sc := bestEver.Breakdown(opts)
	fmt.Fprintf(cmd.OutOrStdout(), "Best ever (gen %d): %s fitness=%d mirror=%d adjacency=%d\n",
		bestGen, bestEver, sc.Total, sc.Mirror, sc.Adjacency)

	path := filepath.Join(cfg.Logging.ArtifactsDir, "champion_final.json")
	if err := logging.SaveChampion(path, bestEver, bestGen, cfg.GA.Alphabet, opts); err != nil {
		logger.Warn("failed to save final champion", "path", path, "err", err)
	}
	return nil
}
