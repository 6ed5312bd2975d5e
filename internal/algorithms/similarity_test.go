package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{2, 0}, []float32{5, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func TestCosineSimilarityDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}

func TestRankBySimilarity(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{
		{0, 1},      // orthogonal
		{1, 0},      // exact match
		{0.9, 0.1},  // close
		{-1, 0},     // opposite
	}

	ranked := RankBySimilarity(query, candidates, 0)
	require.Len(t, ranked, 4)
	assert.Equal(t, 1, ranked[0].Index)
	assert.Equal(t, 2, ranked[1].Index)
	assert.Equal(t, 0, ranked[2].Index)
	assert.Equal(t, 3, ranked[3].Index)
}

func TestRankBySimilarityTopK(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{{1, 0}, {0, 1}, {0.5, 0.5}}

	ranked := RankBySimilarity(query, candidates, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Index)
	assert.Equal(t, 2, ranked[1].Index)
}

func TestRankBySimilarityStableOnTies(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{{3, 0}, {1, 0}, {2, 0}} // all score 1.0

	ranked := RankBySimilarity(query, candidates, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{ranked[0].Index, ranked[1].Index, ranked[2].Index})
}
