package ranking

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// JobProfile describes the position that resumes are ranked against.
type JobProfile struct {
	Title        string
	Description  string
	Requirements string
}

// NewJobProfile validates that all three fields carry content.
func NewJobProfile(title, description, requirements string) (JobProfile, error) {
	if strings.TrimSpace(title) == "" {
		return JobProfile{}, fmt.Errorf("job title is required")
	}
	if strings.TrimSpace(description) == "" {
		return JobProfile{}, fmt.Errorf("job description is required")
	}
	if strings.TrimSpace(requirements) == "" {
		return JobProfile{}, fmt.Errorf("job requirements are required")
	}

	return JobProfile{
		Title:        title,
		Description:  description,
		Requirements: requirements,
	}, nil
}

// QueryText concatenates title, description and requirements in that fixed
// order so identical profiles always embed to identical vectors.
func (j JobProfile) QueryText() string {
	return j.Title + " " + j.Description + " " + j.Requirements
}

// CandidateDocument is the extracted plain text of one resume. The ID is
// caller-supplied and opaque; it only labels the output.
type CandidateDocument struct {
	ID   string
	Text string
}

// RankedResult is one candidate's similarity score against the job profile.
// Error is set when that candidate's embedding failed and the score was
// defaulted to neutral.
type RankedResult struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Error string  `json:"error,omitempty"`
}

// Engine ranks resumes against a job profile by cosine similarity of their
// embeddings. It holds no state between calls beyond the injected embedder.
type Engine struct {
	embedder Embedder
	workers  int
}

func NewEngine(embedder Embedder, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		embedder: embedder,
		workers:  workers,
	}
}

// Rank embeds the job query text and every candidate, scores each candidate
// by cosine similarity and returns one result per input candidate, sorted
// descending by score. The sort is stable: equal scores keep their input
// order. Candidates with empty text score exactly 0.0 without an embedding
// call. A failed candidate embedding also scores 0.0 and carries an error
// marker; a failed query embedding or a cancelled context aborts the whole
// call with no partial result.
func (e *Engine) Rank(ctx context.Context, job JobProfile, candidates []CandidateDocument) ([]RankedResult, error) {
	queryVec, err := e.embedder.Embed(ctx, job.QueryText())
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		}
		return nil, fmt.Errorf("embedding query text: %w: %w", ErrRankingFailed, err)
	}

	results := make([]RankedResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, cand := range candidates {
		results[i] = RankedResult{ID: cand.ID}

		// An empty resume has no semantic content and is defined as exactly
		// neutral rather than cosine-of-a-zero-vector undefined.
		if strings.TrimSpace(cand.Text) == "" {
			continue
		}

		g.Go(func() error {
			vec, err := e.embedder.Embed(gctx, cand.Text)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// One bad document must not block the rest of the batch.
				results[i].Error = err.Error()
				return nil
			}
			results[i].Score = cosineSimilarity(queryVec, vec)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// cosineSimilarity computes dot(a,b) / (|a| * |b|) with float64 accumulation.
// Mismatched lengths or a zero-norm vector score 0 instead of dividing by
// zero. The value is not clamped.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
