package ga_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palga/internal/ga"
)

func TestTournamentSelect(t *testing.T) {
	assert.Nil(t, ga.TournamentSelect(nil, 3, ga.Options{}, newRNG(1)))

	pop := popOf("ABC", "ABBA", "ABCBA", "ABCA")
	// k larger than the pool is clamped; the winner is always a member
	for seed := int64(0); seed < 10; seed++ {
		w := ga.TournamentSelect(pop, 100, ga.Options{}, newRNG(seed))
		require.Contains(t, pop, w)
	}

	// k=50 on four members means four draws with replacement, so the best one
	// wins with probability 1-(3/4)^4
	wins := 0
	rng := newRNG(4)
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		if ga.TournamentSelect(pop, 50, ga.Options{}, rng).String() == "ABCBA" {
			wins++
		}
	}
	assert.InDelta(t, 1-math.Pow(0.75, 4), float64(wins)/rounds, 0.04)
}

// TestTournamentSelect_LargePool keeps k below the pool size so all fifty draws happen.
// The single best member of sixty wins when it is drawn at least once.
func TestTournamentSelect_LargePool(t *testing.T) {
	chroms := make([]string, 60)
	for i := range chroms {
		chroms[i] = "AB"
	}
	chroms[37] = "ABA"
	pool := popOf(chroms...)

	wins := 0
	rng := newRNG(5)
	for i := 0; i < 1000; i++ {
		if ga.TournamentSelect(pool, 50, ga.Options{}, rng) == pool[37] {
			wins++
		}
	}
	// miss probability per tournament is (59/60)^50, about 0.43
	assert.InDelta(t, 1-math.Pow(59.0/60.0, 50), float64(wins)/1000, 0.06)
}

func TestSelectionPool(t *testing.T) {
	pop := popOf("ABC", "ABBA", "ABCBA", "ABCA")
	pool := ga.SelectionPool(pop, 2, ga.Options{})
	require.Len(t, pool, 2)
	assert.Equal(t, []int{5, 3}, pool.Scores(ga.Options{}))
}

func TestDonors(t *testing.T) {
	pop := popOf("ABC", "ABCDE", "ABCDEF", "A")
	donors := ga.Donors(pop, 4)
	require.Len(t, donors, 2)
	for _, d := range donors {
		assert.GreaterOrEqual(t, d.Len(), 5)
	}
	assert.Empty(t, ga.Donors(pop, 10))
}

func TestSelectParents(t *testing.T) {
	pool := popOf("AB", "ABA")
	donors := popOf("ABCDEFGH")
	p1, p2 := ga.SelectParents(pool, donors, 2, ga.Options{}, newRNG(1))
	assert.Contains(t, pool, p1)
	assert.Same(t, donors[0], p2)
}
