package retrieval

import (
	"context"
	"fmt"

	"github.com/jgrande/kbchat/internal/provider"
	"golang.org/x/sync/errgroup"
)

// batchLimit is the maximum number of texts per upstream batch call.
const batchLimit = 100

// Embedder wraps a Provider to generate text embeddings with a fixed model.
type Embedder struct {
	provider provider.Provider
	model    string
}

// NewEmbedder creates an Embedder using the given Provider and model name.
func NewEmbedder(p provider.Provider, model string) *Embedder {
	return &Embedder{provider: p, model: model}
}

// Embed returns the embedding vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.provider.Embed(ctx, e.model, text)
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	return vec, nil
}

// EmbedBatch returns embedding vectors for multiple texts, preserving input
// order and count. Texts are split into provider-sized batches embedded
// concurrently. Returns nil (not error) for empty/nil input.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([][]float32, len(texts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4) // Bound concurrency to stay inside provider rate limits.

	for start := 0; start < len(texts); start += batchLimit {
		end := min(start+batchLimit, len(texts))
		start, end := start, end
		g.Go(func() error {
			vecs, err := e.provider.EmbedBatch(gCtx, e.model, texts[start:end])
			if err != nil {
				return fmt.Errorf("embedding texts %d..%d: %w", start, end-1, err)
			}
			copy(results[start:end], vecs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
