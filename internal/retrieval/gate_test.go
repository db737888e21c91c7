package retrieval

import (
	"testing"

	"github.com/jgrande/kbchat/internal/knowledge"
)

func TestNewGate_Defaults(t *testing.T) {
	g := NewGate(0, 0)
	if g.TopK != DefaultTopK {
		t.Errorf("TopK = %d, want %d", g.TopK, DefaultTopK)
	}
	if g.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %f, want %f", g.Threshold, DefaultThreshold)
	}

	g = NewGate(5, 0.5)
	if g.TopK != 5 || g.Threshold != 0.5 {
		t.Errorf("got TopK=%d Threshold=%f, want 5 and 0.5", g.TopK, g.Threshold)
	}
}

func TestGate_Relevant_InclusiveBoundary(t *testing.T) {
	g := NewGate(3, 0.75)

	tests := []struct {
		name string
		best float64
		want bool
	}{
		{"exactly at threshold", 0.75, true},
		{"just below", 0.749999, false},
		{"above", 0.9, true},
		{"well below", 0.2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := []RankedMatch{{Similarity: tt.best}}
			if got := g.Relevant(ranked); got != tt.want {
				t.Errorf("Relevant(best=%f) = %v, want %v", tt.best, got, tt.want)
			}
		})
	}
}

func TestGate_Relevant_EmptyRanking(t *testing.T) {
	g := NewGate(3, 0.75)
	if g.Relevant(nil) {
		t.Error("empty ranking should not be relevant")
	}
}

func TestGate_Relevant_OnlyBestScoreGates(t *testing.T) {
	g := NewGate(3, 0.75)
	// Best passes; the rest ride along regardless of their scores.
	ranked := []RankedMatch{
		{Similarity: 0.8},
		{Similarity: 0.1},
		{Similarity: 0.05},
	}
	if !g.Relevant(ranked) {
		t.Error("ranking with passing best score should be relevant")
	}
}

func TestGate_Top(t *testing.T) {
	g := NewGate(3, 0.75)

	ranked := []RankedMatch{
		{Document: knowledge.Document{ID: "a"}},
		{Document: knowledge.Document{ID: "b"}},
		{Document: knowledge.Document{ID: "c"}},
		{Document: knowledge.Document{ID: "d"}},
	}

	top := g.Top(ranked)
	if len(top) != 3 {
		t.Fatalf("got %d matches, want 3", len(top))
	}
	if top[0].Document.ID != "a" || top[2].Document.ID != "c" {
		t.Errorf("Top did not keep rank order: %v", top)
	}

	short := g.Top(ranked[:2])
	if len(short) != 2 {
		t.Errorf("got %d matches, want 2 when ranking is shorter than TopK", len(short))
	}
}
