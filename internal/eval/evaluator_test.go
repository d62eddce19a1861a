package eval_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palga/internal/eval"
	"palga/internal/ga"
)

func TestScore_MatchesSequential(t *testing.T) {
	pop, err := ga.NewPopulation(200, 15, 4, ga.Options{}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for _, workers := range []int{1, 4, 0} {
		e := eval.NewEvaluator(ga.Options{}, workers)
		assert.Positive(t, e.Workers())
		scores, err := e.Score(context.Background(), pop)
		require.NoError(t, err)
		assert.Equal(t, pop.Scores(ga.Options{}), scores)
	}
}

func TestScore_Canceled(t *testing.T) {
	pop, err := ga.NewPopulation(10, 5, 4, ga.Options{}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eval.NewEvaluator(ga.Options{}, 1).Score(ctx, pop)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	s := eval.Summarize([]int{3, -1, 5, 1})
	assert.Equal(t, 5, s.Best)
	assert.Equal(t, -1, s.Worst)
	assert.Equal(t, 2.0, s.Mean)
	assert.InDelta(t, 2.2360679, s.Std, 1e-6)
	assert.Equal(t, 4, s.Size)

	assert.Equal(t, eval.Summary{}, eval.Summarize(nil))
}

func TestEvaluate(t *testing.T) {
	pop := ga.Population{
		ga.NewIndividual(ga.Chromosome("ABBA")),
		ga.NewIndividual(ga.Chromosome("ABC")),
	}
	s, err := eval.NewEvaluator(ga.Options{}, 2).Evaluate(context.Background(), pop)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Best)
	assert.Equal(t, -1, s.Worst)
	assert.Equal(t, 1.0, s.Mean)
}
