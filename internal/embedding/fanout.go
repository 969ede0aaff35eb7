package embedding

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds the embedding fan-out.
const defaultConcurrency = 4

// EmbedEach embeds every text with per-call failure isolation: one failed
// call must not abort the batch. The returned slice is aligned with the
// input (nil vector where the call failed) along with the failure count,
// so the caller can decide whether to trust the batch at all.
func EmbedEach(ctx context.Context, embedder TextEmbedder, texts []string, concurrency int) ([][]float64, int) {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	vectors := make([][]float64, len(texts))
	failures := make([]bool, len(texts))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, text := range texts {
		i, text := i, text
		group.Go(func() error {
			result, err := embedder.EmbedStrings(groupCtx, []string{text})
			if err != nil || len(result) != 1 || len(result[0]) == 0 {
				failures[i] = true
				return nil // isolate the failure, keep the batch going
			}
			vectors[i] = result[0]
			return nil
		})
	}

	// Workers never return errors; Wait only observes context cancellation.
	_ = group.Wait()

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	return vectors, failed
}
