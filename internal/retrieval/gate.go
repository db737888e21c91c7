package retrieval

// Default gate parameters. These reproduce the original chatbot's behavior
// and should not be tuned without re-checking the refusal scenarios.
const (
	DefaultTopK      = 3
	DefaultThreshold = 0.75
)

// Gate decides whether a ranking contains enough matching context to answer
// at all. Only the single best similarity gates the decision; lower-ranked
// matches within the top K ride along into the context when the gate passes.
type Gate struct {
	TopK      int
	Threshold float64
}

// NewGate creates a Gate, substituting defaults for non-positive topK or
// threshold.
func NewGate(topK int, threshold float64) Gate {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Gate{TopK: topK, Threshold: threshold}
}

// Relevant reports whether the ranking is non-empty and its best similarity
// meets the threshold. The boundary is inclusive: a best score exactly equal
// to the threshold passes.
func (g Gate) Relevant(ranked []RankedMatch) bool {
	return len(ranked) > 0 && ranked[0].Similarity >= g.Threshold
}

// Top returns the first TopK entries of the ranking (fewer when the ranking
// is shorter).
func (g Gate) Top(ranked []RankedMatch) []RankedMatch {
	if len(ranked) <= g.TopK {
		return ranked
	}
	return ranked[:g.TopK]
}
