package ga

import (
	"math/rand"
)

// TournamentSelect draws k individuals at random and returns the fittest
func TournamentSelect(pool Population, k int, opts Options, rng *rand.Rand) *Individual {
	if len(pool) == 0 {
		return nil
	}
	if k > len(pool) {
		k = len(pool)
	}

	best := pool[rng.Intn(len(pool))]
	bestScore := best.FitnessWith(opts)
	for i := 1; i < k; i++ {
		candidate := pool[rng.Intn(len(pool))]
		if s := candidate.FitnessWith(opts); s > bestScore {
			best, bestScore = candidate, s
		}
	}
	return best
}

// SelectionPool ranks the population and returns its front as the mating pool
func SelectionPool(pop Population, poolSize int, opts Options) Population {
	return pop.TopK(poolSize, opts)
}

// Donors returns the members long enough to act as second parent for maxLength
func Donors(pop Population, maxLength int) Population {
	var out Population
	for _, ind := range pop {
		if ind.Len() >= maxLength+1 {
			out = append(out, ind)
		}
	}
	return out
}

// SelectParents picks the first parent from pool and the second from donors,
// both by tournament
func SelectParents(pool, donors Population, k int, opts Options, rng *rand.Rand) (*Individual, *Individual) {
	p1 := TournamentSelect(pool, k, opts, rng)
	p2 := TournamentSelect(donors, k, opts, rng)
	return p1, p2
}
