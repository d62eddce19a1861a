package evolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"palga/internal/config"
	"palga/internal/ga"
)

// ErrTargetReached stops Run once the best individual hits the configured target
var ErrTargetReached = errors.New("evolve: target fitness reached")

// Observer is called after every generation has been ranked. Returning an error stops Run.
type Observer func(gen int, pop ga.Population) error

// Engine drives generations: rank, keep elites, breed the rest
type Engine struct {
	cfg    config.GAConfig
	opts   ga.Options
	rng    *rand.Rand
	logger *slog.Logger
}

// NewEngine creates an engine for the given GA parameters
func NewEngine(cfg config.GAConfig, rng *rand.Rand, logger *slog.Logger) (*Engine, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ga.ErrInvalidArgument)
	}
	if err := (&config.Config{GA: cfg}).Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:    cfg,
		opts:   cfg.Options(),
		rng:    rng,
		logger: logger,
	}, nil
}

// Options returns the engine options derived from config
func (e *Engine) Options() ga.Options {
	return e.opts
}

// Init creates the first generation
func (e *Engine) Init() (ga.Population, error) {
	return ga.NewPopulation(e.cfg.Population, e.cfg.InitialLength, e.cfg.Alphabet, e.opts, e.rng)
}

// Step ranks pop and returns the next generation. pop is left ranked.
func (e *Engine) Step(ctx context.Context, pop ga.Population) (ga.Population, error) {
	if len(pop) == 0 {
		return nil, fmt.Errorf("%w: empty population", ga.ErrInvalidArgument)
	}

	// 1. Rank; the mating pool is the front of the ranked population
	pool := ga.SelectionPool(pop, e.cfg.SelectionPool, e.opts)

	// 2. Keep elites
	next := make(ga.Population, 0, e.cfg.Population)
	for i := 0; i < e.cfg.Elites && i < len(pop); i++ {
		next = append(next, pop[i].Clone())
	}

	// 3. Second parents must be long enough for the reversed suffix read
	donors := ga.Donors(pop, e.cfg.MaxLength)
	if len(donors) == 0 {
		immigrants, err := e.immigrants()
		if err != nil {
			return nil, err
		}
		e.logger.Debug("no donors long enough, injecting immigrants",
			"count", len(immigrants), "max_length", e.cfg.MaxLength)
		donors = immigrants
	}

	// 4. Fill rest with offspring
	for len(next) < e.cfg.Population {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		child, err := e.breed(pool, donors)
		if err != nil {
			return nil, err
		}
		next = append(next, child)
	}

	return next, nil
}

// breed falls back to a donor as first parent when the pool parent is shorter than
// the drawn prefix. Donors always have more than maxLength symbols.
func (e *Engine) breed(pool, donors ga.Population) (*ga.Individual, error) {
	p1, p2 := ga.SelectParents(pool, donors, e.cfg.TournamentK, e.opts, e.rng)
	child, err := ga.CrossoverWith(p1, p2, e.cfg.MaxLength, e.cfg.MutationRate, e.cfg.Alphabet, e.opts, e.rng)
	if errors.Is(err, ga.ErrOutOfRange) {
		p1 = ga.TournamentSelect(donors, e.cfg.TournamentK, e.opts, e.rng)
		child, err = ga.CrossoverWith(p1, p2, e.cfg.MaxLength, e.cfg.MutationRate, e.cfg.Alphabet, e.opts, e.rng)
	}
	if err != nil {
		return nil, fmt.Errorf("crossover: %w", err)
	}
	return child, nil
}

// immigrants creates fresh random individuals long enough to serve as second parent
func (e *Engine) immigrants() (ga.Population, error) {
	c0 := e.cfg.MaxLength
	if e.opts.ExactInitialLength {
		c0 = e.cfg.MaxLength + 1
	}
	return ga.NewPopulation(e.cfg.Immigrants, c0, e.cfg.Alphabet, e.opts, e.rng)
}

// Run evolves for up to generations steps. The observer sees each generation after it
// has been ranked. Returns the last ranked generation.
func (e *Engine) Run(ctx context.Context, generations int, observe Observer) (ga.Population, error) {
	pop, err := e.Init()
	if err != nil {
		return nil, err
	}

	for gen := 1; gen <= generations; gen++ {
		if err := ga.RankWith(pop, e.opts); err != nil {
			return nil, err
		}
		if observe != nil {
			if err := observe(gen, pop); err != nil {
				return pop, err
			}
		}
		if e.cfg.TargetFitness != nil && pop[0].FitnessWith(e.opts) >= *e.cfg.TargetFitness {
			e.logger.Info("target fitness reached", "generation", gen, "best", pop[0].String())
			return pop, ErrTargetReached
		}
		if gen == generations {
			break
		}

		pop, err = e.Step(ctx, pop)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}
	}

	return pop, nil
}
