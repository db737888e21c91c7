package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/jgrande/kbchat/internal/knowledge"
)

func TestRetrieve_RanksBestFirst(t *testing.T) {
	base := knowledge.New([]knowledge.Document{
		{ID: "far", Content: "far"},
		{ID: "near", Content: "near"},
	})

	p := &mockProvider{
		embedFn: func(_ context.Context, _, _ string) ([]float32, error) {
			return []float32{1, 0}, nil
		},
		embedBatchFn: func(_ context.Context, _ string, texts []string) ([][]float32, error) {
			vecs := make([][]float32, len(texts))
			for i, text := range texts {
				if text == "near" {
					vecs[i] = []float32{1, 0}
				} else {
					vecs[i] = []float32{0, 1}
				}
			}
			return vecs, nil
		},
	}

	embedder := NewEmbedder(p, "m")
	retriever := NewRetriever(embedder, NewCache(base, embedder))

	matches, err := retriever.Retrieve(context.Background(), "query")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Document.ID != "near" {
		t.Errorf("best match = %q, want %q", matches[0].Document.ID, "near")
	}
	if matches[0].Similarity <= matches[1].Similarity {
		t.Errorf("similarities not descending: %f then %f", matches[0].Similarity, matches[1].Similarity)
	}
}

func TestRetrieve_EmptyBase(t *testing.T) {
	p := &mockProvider{
		embedFn: func(_ context.Context, _, _ string) ([]float32, error) {
			return []float32{1, 0}, nil
		},
		embedBatchFn: func(_ context.Context, _ string, _ []string) ([][]float32, error) {
			return nil, nil
		},
	}

	embedder := NewEmbedder(p, "m")
	retriever := NewRetriever(embedder, NewCache(knowledge.New(nil), embedder))

	matches, err := retriever.Retrieve(context.Background(), "query")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestRetrieve_EmbedFails(t *testing.T) {
	p := &mockProvider{
		embedFn: func(_ context.Context, _, _ string) ([]float32, error) {
			return nil, errors.New("embed error")
		},
		embedBatchFn: func(_ context.Context, _ string, _ []string) ([][]float32, error) {
			t.Fatal("knowledge base should not be embedded when query embed fails")
			return nil, nil
		},
	}

	embedder := NewEmbedder(p, "m")
	retriever := NewRetriever(embedder, NewCache(testBase(), embedder))

	if _, err := retriever.Retrieve(context.Background(), "query"); err == nil {
		t.Fatal("expected error")
	}
}
