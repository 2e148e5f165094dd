package ranking

import (
	"context"
	"errors"
)

// Embedder maps text to a fixed-length dense vector using a pretrained
// sentence-embedding model. Implementations must be safe for concurrent use
// and must return identical vectors for identical input text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch is order-preserving and equivalent to calling Embed once
	// per text.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

var (
	// ErrModelUnavailable means the embedding model never loaded successfully.
	// Every ranking attempt fails until the provider is healthy again.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// ErrRankingFailed means the query embedding could not be computed, so no
	// ranking can be produced at all.
	ErrRankingFailed = errors.New("ranking failed")

	// ErrCancelled means the caller's deadline or cancellation fired mid-rank.
	ErrCancelled = errors.New("ranking cancelled")
)
