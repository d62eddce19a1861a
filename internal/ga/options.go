package ga

import (
	"fmt"
	"strings"
)

// MutationMode selects how the per-gene mutation decision is drawn
type MutationMode int

const (
	// MutationLiteral draws an integer from [0, 1), which is always 0, and compares it
	// against the rate. Every gene mutates when rate > 0 and none do at rate 0.
	MutationLiteral MutationMode = iota
	// MutationUniform draws a real number in [0, 1) and mutates when it is below the rate
	MutationUniform
)

func (m MutationMode) String() string {
	switch m {
	case MutationLiteral:
		return "literal"
	case MutationUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// ParseMutationMode maps a config value to a MutationMode. Empty means literal.
func ParseMutationMode(s string) (MutationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return MutationLiteral, nil
	case "uniform":
		return MutationUniform, nil
	default:
		return 0, fmt.Errorf("%w: unknown mutation mode %q", ErrInvalidArgument, s)
	}
}

// Options toggles between historical and corrected behaviour. The zero value reproduces
// the historical engine except for the crossover suffix, which copies exactly
// suffixLength symbols unless LiteralSuffix is set.
type Options struct {
	Mutation MutationMode

	// ExactInitialLength makes random individuals exactly initialLength symbols long
	// instead of initialLength+1.
	ExactInitialLength bool

	// HalfMirror scores each mirrored pair once instead of twice.
	HalfMirror bool

	// LiteralSuffix makes crossover read suffixLength+1 symbols of the second parent,
	// indices maxLength down to maxLength-suffixLength inclusive.
	LiteralSuffix bool
}

// InitialLength returns the chromosome length a random individual gets for c0
func (o Options) InitialLength(c0 int) int {
	if o.ExactInitialLength {
		return c0
	}
	return c0 + 1
}
