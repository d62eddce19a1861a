package ga_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palga/internal/ga"
)

const (
	forward  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	backward = "ZYXWVUTSRQPONMLKJIHGFEDCBA"
)

// drawLengths replays the two length draws crossover makes first with the same seed
func drawLengths(seed int64, maxLength int) (int, int) {
	rng := newRNG(seed)
	a := 1 + rng.Intn(maxLength-1)
	b := 1 + rng.Intn(maxLength-1)
	return a, b
}

// TestCrossover_LayoutWithoutMutation checks prefix, reversed suffix and truncation
// against replayed draws when the mutation rate is zero.
func TestCrossover_LayoutWithoutMutation(t *testing.T) {
	p1 := ga.NewIndividual(ga.Chromosome(forward))
	p2 := ga.NewIndividual(ga.Chromosome(backward))

	for _, maxLength := range []int{2, 3, 8, 15, 25} {
		for seed := int64(0); seed < 40; seed++ {
			a, b := drawLengths(seed, maxLength)

			child, err := ga.Crossover(p1, p2, maxLength, 0, 26, newRNG(seed))
			require.NoError(t, err)

			want := []byte(forward[:a])
			for i := maxLength; i > maxLength-b; i-- {
				want = append(want, backward[i])
			}
			if len(want) > maxLength {
				want = want[:maxLength]
			}

			require.Equal(t, string(want), child.String(), "max=%d seed=%d a=%d b=%d", maxLength, seed, a, b)
			require.Equal(t, min(a+b, maxLength), child.Len())
			require.GreaterOrEqual(t, child.Len(), 1)
			require.LessOrEqual(t, child.Len(), maxLength)
		}
	}
}

// TestCrossover_LiteralSuffixLayout reads one extra symbol of the second parent, down
// to index maxLength-b, before truncating.
func TestCrossover_LiteralSuffixLayout(t *testing.T) {
	p1 := ga.NewIndividual(ga.Chromosome(forward))
	p2 := ga.NewIndividual(ga.Chromosome(backward))
	opts := ga.Options{LiteralSuffix: true}

	for _, maxLength := range []int{2, 3, 8, 15, 25} {
		for seed := int64(0); seed < 40; seed++ {
			a, b := drawLengths(seed, maxLength)

			child, err := ga.CrossoverWith(p1, p2, maxLength, 0, 26, opts, newRNG(seed))
			require.NoError(t, err)

			want := []byte(forward[:a])
			for i := maxLength; i >= maxLength-b; i-- {
				want = append(want, backward[i])
			}
			if len(want) > maxLength {
				want = want[:maxLength]
			}

			require.Equal(t, string(want), child.String(), "max=%d seed=%d a=%d b=%d", maxLength, seed, a, b)
			require.Equal(t, min(a+b+1, maxLength), child.Len())
		}
	}

	// the second parent still needs maxLength+1 symbols
	_, err := ga.CrossoverWith(p1, ga.NewIndividual(ga.Chromosome("ABCDEFGHIJ")), 10, 0, 26, opts, newRNG(1))
	require.ErrorIs(t, err, ga.ErrOutOfRange)
}

// TestCrossover_LiteralMutationRewritesEveryGene uses a one-letter alphabet so every
// rewritten gene becomes 'A'. Under the literal decision any positive rate fires on
// every position.
func TestCrossover_LiteralMutationRewritesEveryGene(t *testing.T) {
	p1 := ga.NewIndividual(ga.Chromosome("BBBBBBBBBBBB"))
	p2 := ga.NewIndividual(ga.Chromosome("CCCCCCCCCCCC"))

	for seed := int64(0); seed < 20; seed++ {
		child, err := ga.Crossover(p1, p2, 10, 0.001, 1, newRNG(seed))
		require.NoError(t, err)
		for _, sym := range child.Chromosome {
			require.Equal(t, byte('A'), sym)
		}
	}
}

func TestCrossover_ZeroRateNeverMutates(t *testing.T) {
	p1 := ga.NewIndividual(ga.Chromosome("BBBBBBBBBBBB"))
	p2 := ga.NewIndividual(ga.Chromosome("CCCCCCCCCCCC"))

	for _, mode := range []ga.MutationMode{ga.MutationLiteral, ga.MutationUniform} {
		for seed := int64(0); seed < 20; seed++ {
			child, err := ga.CrossoverWith(p1, p2, 10, 0, 1, ga.Options{Mutation: mode}, newRNG(seed))
			require.NoError(t, err)
			assert.NotContains(t, child.String(), "A", "mode=%s", mode)
		}
	}
}

// TestCrossover_UniformMutation checks both ends of the rate range and that a small
// rate leaves most genes alone.
func TestCrossover_UniformMutation(t *testing.T) {
	p1 := ga.NewIndividual(ga.Chromosome("BBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"))
	p2 := ga.NewIndividual(ga.Chromosome("CCCCCCCCCCCCCCCCCCCCCCCCCCCCCC"))
	opts := ga.Options{Mutation: ga.MutationUniform}

	child, err := ga.CrossoverWith(p1, p2, 20, 1, 1, opts, newRNG(5))
	require.NoError(t, err)
	for _, sym := range child.Chromosome {
		require.Equal(t, byte('A'), sym)
	}

	rng := newRNG(9)
	mutated, total := 0, 0
	for i := 0; i < 200; i++ {
		child, err := ga.CrossoverWith(p1, p2, 20, 0.05, 1, opts, rng)
		require.NoError(t, err)
		for _, sym := range child.Chromosome {
			if sym == 'A' {
				mutated++
			}
			total++
		}
	}
	assert.Less(t, float64(mutated)/float64(total), 0.15)
	assert.Greater(t, mutated, 0)
}

func TestCrossover_OutOfRange(t *testing.T) {
	long := ga.NewIndividual(ga.Chromosome(forward))

	// second parent needs maxLength+1 symbols
	short := ga.NewIndividual(ga.Chromosome("ABCDEFGHIJ"))
	_, err := ga.Crossover(long, short, 10, 0.1, 4, newRNG(1))
	require.ErrorIs(t, err, ga.ErrOutOfRange)

	exact := ga.NewIndividual(ga.Chromosome("ABCDEFGHIJK"))
	_, err = ga.Crossover(long, exact, 10, 0.1, 4, newRNG(1))
	require.NoError(t, err)

	// first parent shorter than any prefix
	empty := ga.NewIndividual(ga.Chromosome(""))
	_, err = ga.Crossover(empty, long, 10, 0.1, 4, newRNG(1))
	require.ErrorIs(t, err, ga.ErrOutOfRange)
}

func TestCrossover_InvalidArgument(t *testing.T) {
	p := ga.NewIndividual(ga.Chromosome(forward))
	cases := []struct {
		name      string
		p1, p2    *ga.Individual
		maxLength int
		rate      float64
		alphabet  int
	}{
		{"zero max length", p, p, 0, 0.1, 4},
		{"negative max length", p, p, -5, 0.1, 4},
		{"max length one", p, p, 1, 0.1, 4},
		{"negative rate", p, p, 10, -0.1, 4},
		{"rate above one", p, p, 10, 1.5, 4},
		{"NaN rate", p, p, 10, math.NaN(), 4},
		{"zero alphabet", p, p, 10, 0.1, 0},
		{"nil first parent", nil, p, 10, 0.1, 4},
		{"nil second parent", p, nil, 10, 0.1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			child, err := ga.Crossover(tc.p1, tc.p2, tc.maxLength, tc.rate, tc.alphabet, newRNG(1))
			require.ErrorIs(t, err, ga.ErrInvalidArgument)
			require.Nil(t, child)
		})
	}

	_, err := ga.Crossover(p, p, 10, 0.1, 4, nil)
	require.ErrorIs(t, err, ga.ErrInvalidArgument)
}

// TestCrossover_ChildOwnsChromosome makes sure parents are untouched and unshared.
func TestCrossover_ChildOwnsChromosome(t *testing.T) {
	p1 := ga.NewIndividual(ga.Chromosome(forward))
	p2 := ga.NewIndividual(ga.Chromosome(backward))

	child, err := ga.Crossover(p1, p2, 12, 0.5, 26, newRNG(3))
	require.NoError(t, err)
	for i := range child.Chromosome {
		child.Chromosome[i] = 'Q'
	}
	assert.Equal(t, forward, p1.String())
	assert.Equal(t, backward, p2.String())
}
