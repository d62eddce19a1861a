package ga

import (
	"fmt"
	"math/rand"
	"sort"
)

// Population is one generation, in rank order once Rank has run
type Population []*Individual

// NewPopulation creates size random individuals and returns them in creation order
func NewPopulation(size, initialLength, alphabetSize int, opts Options, rng *rand.Rand) (Population, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: population size %d", ErrInvalidArgument, size)
	}

	pop := make(Population, size)
	for i := 0; i < size; i++ {
		ind, err := NewRandomIndividualWith(initialLength, alphabetSize, opts, rng)
		if err != nil {
			return nil, err
		}
		pop[i] = ind
	}
	return pop, nil
}

// Rank sorts the population in place by fitness, highest first. Fitness is recomputed
// on every comparison. Equal scores keep no particular order.
func Rank(pop Population) error {
	return RankWith(pop, Options{})
}

// RankWith is Rank with the scoring policy from opts
func RankWith(pop Population, opts Options) error {
	if pop == nil {
		return fmt.Errorf("%w: nil population", ErrInvalidArgument)
	}
	sort.Slice(pop, func(i, j int) bool {
		return pop[i].FitnessWith(opts) > pop[j].FitnessWith(opts)
	})
	return nil
}

// Size returns the population size
func (p Population) Size() int {
	return len(p)
}

// Scores returns the fitness of every individual, in population order
func (p Population) Scores(opts Options) []int {
	scores := make([]int, len(p))
	for i, ind := range p {
		scores[i] = ind.FitnessWith(opts)
	}
	return scores
}

// Best returns the individual with highest fitness without reordering
func (p Population) Best(opts Options) *Individual {
	if len(p) == 0 {
		return nil
	}
	best := p[0]
	bestScore := best.FitnessWith(opts)
	for _, ind := range p[1:] {
		if s := ind.FitnessWith(opts); s > bestScore {
			best, bestScore = ind, s
		}
	}
	return best
}

// TopK ranks the population and returns its first k members
func (p Population) TopK(k int, opts Options) Population {
	if p == nil {
		return nil
	}
	if err := RankWith(p, opts); err != nil {
		return nil
	}
	if k > len(p) {
		k = len(p)
	}
	if k < 0 {
		k = 0
	}
	return p[:k]
}
