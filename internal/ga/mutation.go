package ga

import (
	"math/rand"
)

// Mutate rewrites genes in place. Each position independently gets a fresh random
// symbol when the mutation decision fires. alphabetSize must already be validated.
// Returns the number of rewritten positions.
func Mutate(c Chromosome, rate float64, alphabetSize int, mode MutationMode, rng *rand.Rand) int {
	mutated := 0
	for i := range c {
		if doesMutate(rate, mode, rng) {
			c[i] = randomLetter(alphabetSize, rng)
			mutated++
		}
	}
	return mutated
}

func doesMutate(rate float64, mode MutationMode, rng *rand.Rand) bool {
	if mode == MutationUniform {
		return rng.Float64() < rate
	}
	// integer draw over [0, 1) is always 0
	return float64(rng.Intn(1)) < rate
}
