package eval

import (
	"context"
	"math"
	"runtime"
	"sync"

	"palga/internal/ga"
)

// Evaluator scores populations concurrently
type Evaluator struct {
	opts    ga.Options
	workers int
}

// NewEvaluator creates a new evaluator. workers <= 0 means one per CPU.
func NewEvaluator(opts ga.Options, workers int) *Evaluator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Evaluator{
		opts:    opts,
		workers: workers,
	}
}

// Workers returns the concurrency limit
func (e *Evaluator) Workers() int {
	return e.workers
}

// Score computes fitness for every individual. scores[i] belongs to pop[i].
// Each goroutine only reads its own individual and writes its own slot.
func (e *Evaluator) Score(ctx context.Context, pop ga.Population) ([]int, error) {
	scores := make([]int, len(pop))

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers)

	for i, ind := range pop {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, ind *ga.Individual) {
			defer wg.Done()
			defer func() { <-sem }()
			scores[i] = ind.FitnessWith(e.opts)
		}(i, ind)
	}
	wg.Wait()

	return scores, nil
}

// Summary holds per-generation fitness statistics
type Summary struct {
	Best  int     `json:"best"`
	Worst int     `json:"worst"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Size  int     `json:"size"`
}

// Summarize computes statistics from a score slice
func Summarize(scores []int) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}

	s := Summary{Best: scores[0], Worst: scores[0], Size: n}
	var sum float64
	for _, v := range scores {
		if v > s.Best {
			s.Best = v
		}
		if v < s.Worst {
			s.Worst = v
		}
		sum += float64(v)
	}

	nf := float64(n)
	s.Mean = sum / nf

	var variance float64
	for _, v := range scores {
		diff := float64(v) - s.Mean
		variance += diff * diff
	}
	s.Std = math.Sqrt(variance / nf)

	return s
}

// Evaluate scores the population and summarizes the result
func (e *Evaluator) Evaluate(ctx context.Context, pop ga.Population) (Summary, error) {
	scores, err := e.Score(ctx, pop)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(scores), nil
}
