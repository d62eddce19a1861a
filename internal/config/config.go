package config

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"palga/internal/ga"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64      `yaml:"seed"`
	GA      GAConfig   `yaml:"ga"`
	Eval    EvalConfig `yaml:"eval"`
	Logging LogConfig  `yaml:"logging"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population         int     `yaml:"population"`
	InitialLength      int     `yaml:"initial_length"`
	MaxLength          int     `yaml:"max_length"`
	MutationRate       float64 `yaml:"mutation_rate"`
	Alphabet           int     `yaml:"alphabet"`
	MutationMode       string  `yaml:"mutation_mode"` // literal|uniform
	ExactInitialLength bool    `yaml:"exact_initial_length"`
	HalfMirror         bool    `yaml:"half_mirror"`
	LiteralSuffix      bool    `yaml:"literal_suffix"`
	Elites             int     `yaml:"elites"`
	SelectionPool      int     `yaml:"selection_pool"`
	TournamentK        int     `yaml:"tournament_k"`
	Immigrants         int     `yaml:"immigrants"`
	TargetFitness      *int    `yaml:"target_fitness"` // unset disables early stop; fitness may be negative
}

// EvalConfig defines evaluation parameters
type EvalConfig struct {
	Workers int `yaml:"workers"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	Level             string `yaml:"level"`
	EveryGenSummary   bool   `yaml:"every_gen_summary"`
	TopNDebug         int    `yaml:"topn_debug"`
	SaveChampionEvery int    `yaml:"save_champion_every"`
	CSVPath           string `yaml:"csv_path"`
	JSONPath          string `yaml:"json_path"`
	ArtifactsDir      string `yaml:"artifacts_dir"`
}

// Load reads a YAML config file and returns a validated Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML bytes, applies defaults and validates
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 100
	}
	if cfg.GA.InitialLength == 0 {
		cfg.GA.InitialLength = 12
	}
	if cfg.GA.MaxLength == 0 {
		cfg.GA.MaxLength = 12
	}
	if cfg.GA.MutationRate == 0 {
		cfg.GA.MutationRate = 0.05
	}
	if cfg.GA.Alphabet == 0 {
		cfg.GA.Alphabet = 4
	}
	if cfg.GA.MutationMode == "" {
		cfg.GA.MutationMode = "literal"
	}
	if cfg.GA.Elites == 0 {
		cfg.GA.Elites = 2
	}
	if cfg.GA.SelectionPool == 0 {
		cfg.GA.SelectionPool = 40
	}
	if cfg.GA.TournamentK == 0 {
		cfg.GA.TournamentK = 3
	}
	if cfg.GA.Immigrants == 0 {
		cfg.GA.Immigrants = 10
	}
	if cfg.Eval.Workers <= 0 {
		cfg.Eval.Workers = runtime.NumCPU()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.TopNDebug == 0 {
		cfg.Logging.TopNDebug = 5
	}
	if cfg.Logging.SaveChampionEvery == 0 {
		cfg.Logging.SaveChampionEvery = 100
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Logging.ArtifactsDir == "" {
		cfg.Logging.ArtifactsDir = "artifacts"
	}
}

// Validate checks the GA parameters the engine cannot run without
func (c *Config) Validate() error {
	g := c.GA
	if g.Population <= 0 {
		return fmt.Errorf("%w: ga.population must be positive, got %d", ga.ErrInvalidArgument, g.Population)
	}
	if g.Alphabet <= 0 || g.Alphabet > ga.MaxAlphabet {
		return fmt.Errorf("%w: ga.alphabet must be in [1, %d], got %d", ga.ErrInvalidArgument, ga.MaxAlphabet, g.Alphabet)
	}
	if g.MaxLength < 2 {
		return fmt.Errorf("%w: ga.max_length must be at least 2, got %d", ga.ErrInvalidArgument, g.MaxLength)
	}
	if g.InitialLength < 1 {
		return fmt.Errorf("%w: ga.initial_length must be positive, got %d", ga.ErrInvalidArgument, g.InitialLength)
	}
	if math.IsNaN(g.MutationRate) || g.MutationRate < 0 || g.MutationRate > 1 {
		return fmt.Errorf("%w: ga.mutation_rate must be in [0, 1], got %v", ga.ErrInvalidArgument, g.MutationRate)
	}
	if _, err := ga.ParseMutationMode(g.MutationMode); err != nil {
		return err
	}
	if g.Elites < 0 || g.Elites >= g.Population {
		return fmt.Errorf("%w: ga.elites must be in [0, population), got %d", ga.ErrInvalidArgument, g.Elites)
	}
	if g.SelectionPool <= 0 {
		return fmt.Errorf("%w: ga.selection_pool must be positive, got %d", ga.ErrInvalidArgument, g.SelectionPool)
	}
	if g.TournamentK <= 0 {
		return fmt.Errorf("%w: ga.tournament_k must be positive, got %d", ga.ErrInvalidArgument, g.TournamentK)
	}
	if g.Immigrants <= 0 {
		return fmt.Errorf("%w: ga.immigrants must be positive, got %d", ga.ErrInvalidArgument, g.Immigrants)
	}
	return nil
}

// Options converts the GA section into engine options
func (g GAConfig) Options() ga.Options {
	mode, _ := ga.ParseMutationMode(g.MutationMode)
	return ga.Options{
		Mutation:           mode,
		ExactInitialLength: g.ExactInitialLength,
		HalfMirror:         g.HalfMirror,
		LiteralSuffix:      g.LiteralSuffix,
	}
}
