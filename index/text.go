package index

import (
	"fmt"
	"math"

	"github.com/scoutbase/founderrag/core"
)

// CanonicalText builds the text representation of a record that gets embedded.
// Field order and labels are fixed: they are part of the embedding semantics
// and must match between indexing and any re-derivation.
func CanonicalText(rec *core.Record) string {
	return fmt.Sprintf(
		"Founder: %s | Role: %s | Company: %s | Location: %s | Stage: %s | Keywords: %s | Idea: %s | About: %s",
		rec.Name,
		rec.Role,
		rec.Company,
		rec.Location,
		rec.Stage,
		rec.Keywords,
		rec.Idea,
		rec.About,
	)
}

// dotProduct computes the inner product of two vectors.
// For unit vectors this equals their cosine similarity.
func dotProduct(a, b []float32) float32 {
	n := min(len(a), len(b))
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// normalizeL2 scales v in place to unit L2 norm.
// Returns false when v has zero norm and was left unchanged.
func normalizeL2(v []float32) bool {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	if sumSquares == 0 {
		return false
	}
	inv := float32(1.0 / math.Sqrt(sumSquares))
	for i := range v {
		v[i] *= inv
	}
	return true
}
