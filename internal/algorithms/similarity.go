package algorithms

import (
	"math"
	"sort"
)

// Ranked pairs a candidate index with its similarity score.
// Higher is better.
type Ranked struct {
	Index int
	Score float64
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankBySimilarity scores every candidate against the query vector and
// returns the top-k, best first. The sort is stable so equal scores keep
// the candidates' original order.
func RankBySimilarity(query []float32, candidates [][]float32, k int) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for i, c := range candidates {
		ranked = append(ranked, Ranked{Index: i, Score: CosineSimilarity(query, c)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
