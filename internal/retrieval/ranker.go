package retrieval

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jgrande/kbchat/internal/knowledge"
)

// ErrDimensionMismatch indicates vectors of unequal length were compared.
// This is a programming or configuration error (e.g. mixing embedding
// models), fatal to the request.
var ErrDimensionMismatch = errors.New("vector dimensions do not match")

// Candidate pairs a knowledge document with its embedding vector.
type Candidate struct {
	Document knowledge.Document
	Vector   []float32
}

// RankedMatch is a knowledge document scored against a query.
type RankedMatch struct {
	Document   knowledge.Document
	Similarity float64
}

// Rank scores every candidate against the query vector by cosine similarity
// and returns the candidates ordered by similarity descending. Ties keep the
// candidates' original order (stable sort), so output is deterministic for a
// fixed input. An empty candidate set returns an empty ranking, not an error.
func Rank(query []float32, candidates []Candidate) ([]RankedMatch, error) {
	matches := make([]RankedMatch, 0, len(candidates))
	for i, c := range candidates {
		if len(c.Vector) != len(query) {
			return nil, fmt.Errorf("candidate %d has %d dimensions, query has %d: %w",
				i, len(c.Vector), len(query), ErrDimensionMismatch)
		}
		matches = append(matches, RankedMatch{
			Document:   c.Document,
			Similarity: cosineSimilarity(query, c.Vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches, nil
}

// cosineSimilarity computes dot(a,b) / (|a| * |b|) in float64 precision.
// A zero-magnitude vector on either side yields 0 rather than NaN.
func cosineSimilarity(a, b []float32) float64 {
	var dot, aNormSq, bNormSq float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		aNormSq += float64(a[i]) * float64(a[i])
		bNormSq += float64(b[i]) * float64(b[i])
	}

	norm := math.Sqrt(aNormSq) * math.Sqrt(bNormSq)
	if norm == 0 {
		return 0
	}
	return dot / norm
}
