package ga

import (
	"fmt"
	"math"
	"math/rand"
)

// Crossover builds a child from a prefix of p1 and a reversed run of p2, then mutates it.
//
// The prefix is p1[0:a] with a drawn from [1, maxLength). The suffix is b symbols of p2
// read backwards starting at index maxLength, with b drawn from [1, maxLength). The
// concatenation is truncated to maxLength and never padded. p2 must therefore hold at
// least maxLength+1 symbols, otherwise ErrOutOfRange is returned.
func Crossover(p1, p2 *Individual, maxLength int, mutationRate float64, alphabetSize int, rng *rand.Rand) (*Individual, error) {
	return CrossoverWith(p1, p2, maxLength, mutationRate, alphabetSize, Options{}, rng)
}

// CrossoverWith is Crossover with the mutation mode and suffix policy from opts.
// With opts.LiteralSuffix the backward read takes one more symbol, down to index
// maxLength-b, and the child length becomes min(a+b+1, maxLength).
func CrossoverWith(p1, p2 *Individual, maxLength int, mutationRate float64, alphabetSize int, opts Options, rng *rand.Rand) (*Individual, error) {
	if p1 == nil || p2 == nil {
		return nil, fmt.Errorf("%w: nil parent", ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	// [1, maxLength) is empty below 2
	if maxLength < 2 {
		return nil, fmt.Errorf("%w: max length %d", ErrInvalidArgument, maxLength)
	}
	if math.IsNaN(mutationRate) || mutationRate < 0 || mutationRate > 1 {
		return nil, fmt.Errorf("%w: mutation rate %v not in [0, 1]", ErrInvalidArgument, mutationRate)
	}
	if err := checkAlphabet(alphabetSize); err != nil {
		return nil, err
	}
	if len(p2.Chromosome) < maxLength+1 {
		return nil, fmt.Errorf("%w: second parent has %d symbols, crossover with max length %d needs %d",
			ErrOutOfRange, len(p2.Chromosome), maxLength, maxLength+1)
	}

	prefixLength := randomRange(1, maxLength, rng)
	if len(p1.Chromosome) < prefixLength {
		return nil, fmt.Errorf("%w: first parent has %d symbols, prefix needs %d",
			ErrOutOfRange, len(p1.Chromosome), prefixLength)
	}
	suffixLength := randomRange(1, maxLength, rng)

	last := maxLength - suffixLength + 1
	if opts.LiteralSuffix {
		last = maxLength - suffixLength
	}

	child := make(Chromosome, 0, prefixLength+maxLength-last+1)
	child = append(child, p1.Chromosome[:prefixLength]...)
	for i := maxLength; i >= last; i-- {
		child = append(child, p2.Chromosome[i])
	}
	if len(child) > maxLength {
		child = child[:maxLength]
	}

	Mutate(child, mutationRate, alphabetSize, opts.Mutation, rng)

	return &Individual{Chromosome: child}, nil
}

// randomRange draws uniformly from [start, end)
func randomRange(start, end int, rng *rand.Rand) int {
	return start + rng.Intn(end-start)
}
