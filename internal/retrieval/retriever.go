package retrieval

import "context"

// Retriever combines query embedding and the cached knowledge base to rank
// documents against a query.
type Retriever struct {
	embedder *Embedder
	cache    *Cache
}

// NewRetriever creates a Retriever backed by the given Embedder and Cache.
func NewRetriever(embedder *Embedder, cache *Cache) *Retriever {
	return &Retriever{embedder: embedder, cache: cache}
}

// Retrieve embeds the query and returns every knowledge document ranked by
// cosine similarity, best first. Gating and top-K truncation are the
// caller's concern.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]RankedMatch, error) {
	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates, err := r.cache.Candidates(ctx)
	if err != nil {
		return nil, err
	}

	return Rank(vec, candidates)
}
