package embedding

import (
	"context"

	"github.com/jonathan/resume-targeter/internal/cache"
)

// CachedEmbedder memoizes an inner TextEmbedder through the cache port.
// Only texts missing from the cache reach the provider.
type CachedEmbedder struct {
	inner TextEmbedder
	store cache.Cache
}

// NewCachedEmbedder wraps an embedder with cache-port memoization.
func NewCachedEmbedder(inner TextEmbedder, store cache.Cache) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, store: store}
}

// EmbedStrings returns cached vectors where available and embeds the rest
// in a single provider call.
func (c *CachedEmbedder) EmbedStrings(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	missing := make([]string, 0, len(texts))
	missingIdx := make([]int, 0, len(texts))

	for i, text := range texts {
		if vector, ok := c.store.Get(text); ok {
			vectors[i] = vector
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	fetched, err := c.inner.EmbedStrings(ctx, missing)
	if err != nil {
		return nil, err
	}

	for j, vector := range fetched {
		vectors[missingIdx[j]] = vector
		c.store.Set(missing[j], vector)
	}
	return vectors, nil
}
