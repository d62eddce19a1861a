package ga

import (
	"fmt"
	"math/rand"
)

// MaxAlphabet is the number of usable symbols, 'A' through 'Z'
const MaxAlphabet = 26

// Chromosome is an ordered sequence of symbols drawn from 'A'..'A'+alphabet-1
type Chromosome []byte

// String concatenates the symbols in order
func (c Chromosome) String() string {
	return string(c)
}

// Clone returns a copy that shares no storage with c
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// ParseChromosome converts rendered text back into a chromosome, checking every
// symbol against the alphabet
func ParseChromosome(s string, alphabetSize int) (Chromosome, error) {
	if err := checkAlphabet(alphabetSize); err != nil {
		return nil, err
	}
	c := make(Chromosome, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || int(s[i]-'A') >= alphabetSize {
			return nil, fmt.Errorf("%w: symbol %q at %d outside alphabet of %d", ErrInvalidArgument, s[i], i, alphabetSize)
		}
		c[i] = s[i]
	}
	return c, nil
}

// Individual is a candidate solution. It owns its chromosome exclusively.
type Individual struct {
	Chromosome Chromosome
}

// NewIndividual wraps a copy of c
func NewIndividual(c Chromosome) *Individual {
	return &Individual{Chromosome: c.Clone()}
}

// NewRandomIndividual creates an individual of length initialLength+1 whose symbols are
// drawn uniformly from the first alphabetSize letters.
func NewRandomIndividual(initialLength, alphabetSize int, rng *rand.Rand) (*Individual, error) {
	return NewRandomIndividualWith(initialLength, alphabetSize, Options{}, rng)
}

// NewRandomIndividualWith is NewRandomIndividual with the length policy taken from opts
func NewRandomIndividualWith(initialLength, alphabetSize int, opts Options, rng *rand.Rand) (*Individual, error) {
	if err := checkAlphabet(alphabetSize); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	n := opts.InitialLength(initialLength)
	if initialLength < 0 || n < 1 {
		return nil, fmt.Errorf("%w: initial length %d", ErrInvalidArgument, initialLength)
	}

	c := make(Chromosome, n)
	for i := range c {
		c[i] = randomLetter(alphabetSize, rng)
	}
	return &Individual{Chromosome: c}, nil
}

// String renders the chromosome
func (ind *Individual) String() string {
	return ind.Chromosome.String()
}

// Len returns the chromosome length
func (ind *Individual) Len() int {
	return len(ind.Chromosome)
}

// Clone creates a deep copy of an individual
func (ind *Individual) Clone() *Individual {
	return &Individual{Chromosome: ind.Chromosome.Clone()}
}

func randomLetter(alphabetSize int, rng *rand.Rand) byte {
	return byte('A' + rng.Intn(alphabetSize))
}

func checkAlphabet(alphabetSize int) error {
	if alphabetSize <= 0 || alphabetSize > MaxAlphabet {
		return fmt.Errorf("%w: alphabet size %d not in [1, %d]", ErrInvalidArgument, alphabetSize, MaxAlphabet)
	}
	return nil
}
