package retrieval

import (
	"context"
	"fmt"
	"sync"

	"github.com/jgrande/kbchat/internal/knowledge"
	"golang.org/x/sync/singleflight"
)

// Cache holds the lazily computed embeddings of the knowledge base. The base
// is immutable for the process lifetime, so embeddings are computed at most
// once: concurrent first requests share a single embedding call via
// singleflight, and every later request reads the completed cache. There is
// no invalidation or eviction.
type Cache struct {
	base     *knowledge.Base
	embedder *Embedder

	group singleflight.Group

	mu      sync.RWMutex
	vectors [][]float32
}

// NewCache creates a Cache over the given knowledge base. No embedding work
// happens until the first Candidates call.
func NewCache(base *knowledge.Base, embedder *Embedder) *Cache {
	return &Cache{base: base, embedder: embedder}
}

// Candidates returns every knowledge document paired with its embedding,
// computing and caching the embeddings on first use. A failed computation is
// not cached; the next caller retries.
func (c *Cache) Candidates(ctx context.Context) ([]Candidate, error) {
	c.mu.RLock()
	vectors := c.vectors
	c.mu.RUnlock()

	if vectors == nil {
		v, err, _ := c.group.Do("knowledge-base", func() (any, error) {
			vecs, err := c.embedder.EmbedBatch(ctx, c.base.Contents())
			if err != nil {
				return nil, fmt.Errorf("embedding knowledge base: %w", err)
			}
			c.mu.Lock()
			c.vectors = vecs
			c.mu.Unlock()
			return vecs, nil
		})
		if err != nil {
			return nil, err
		}
		vectors = v.([][]float32)
	}

	docs := c.base.Documents()
	candidates := make([]Candidate, len(docs))
	for i, doc := range docs {
		candidates[i] = Candidate{Document: doc, Vector: vectors[i]}
	}
	return candidates, nil
}

// Warm computes the knowledge base embeddings ahead of the first request.
// Errors are returned so the caller can decide whether they are fatal.
func (c *Cache) Warm(ctx context.Context) error {
	_, err := c.Candidates(ctx)
	return err
}
