package ranking

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeDim = 32

// fakeEmbedder is a deterministic, offline stand-in for the sentence model.
// It hashes words into a fixed-size bag-of-words vector, so texts sharing
// vocabulary land close together under cosine similarity.
type fakeEmbedder struct {
	mu      sync.Mutex
	calls   int
	failFor map[string]error
	failAll error
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{failFor: map[string]error{}}
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	f.calls++
	failAll := f.failAll
	failFor := f.failFor[text]
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if failAll != nil {
		return nil, failAll
	}
	if failFor != nil {
		return nil, failFor
	}

	vec := make([]float32, fakeDim)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%fakeDim]++
	}
	return vec, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vecs = append(vecs, vec)
	}
	return vecs, nil
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func backendJob(t *testing.T) JobProfile {
	t.Helper()
	job, err := NewJobProfile(
		"Backend Engineer",
		"Build REST APIs in a distributed system",
		"Experience with databases and networking",
	)
	require.NoError(t, err)
	return job
}

func TestNewJobProfileValidation(t *testing.T) {
	_, err := NewJobProfile("", "desc", "reqs")
	assert.ErrorContains(t, err, "title")

	_, err = NewJobProfile("title", "   ", "reqs")
	assert.ErrorContains(t, err, "description")

	_, err = NewJobProfile("title", "desc", "")
	assert.ErrorContains(t, err, "requirements")
}

func TestQueryTextOrder(t *testing.T) {
	job := backendJob(t)
	want := "Backend Engineer Build REST APIs in a distributed system Experience with databases and networking"
	assert.Equal(t, want, job.QueryText())
	// Stable across calls.
	assert.Equal(t, job.QueryText(), job.QueryText())
}

func TestRankEndToEnd(t *testing.T) {
	engine := NewEngine(newFakeEmbedder(), 4)

	candidates := []CandidateDocument{
		{ID: "a", Text: "Backend engineer experienced with REST APIs databases networking and distributed system design"},
		{ID: "b", Text: "Creative marketing specialist managing social media campaigns and brand storytelling"},
		{ID: "c", Text: ""},
	}

	results, err := engine.Rank(context.Background(), backendJob(t), candidates)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byID := map[string]RankedResult{}
	for _, r := range results {
		byID[r.ID] = r
	}
	require.Len(t, byID, 3)

	assert.Greater(t, byID["a"].Score, byID["b"].Score)
	assert.Greater(t, byID["b"].Score, byID["c"].Score)
	assert.Equal(t, 0.0, byID["c"].Score)
}

func TestRankDeterminism(t *testing.T) {
	engine := NewEngine(newFakeEmbedder(), 4)
	job := backendJob(t)

	candidates := []CandidateDocument{
		{ID: "1", Text: "golang postgres kubernetes"},
		{ID: "2", Text: "sales marketing outreach"},
		{ID: "3", Text: "backend apis databases networking"},
	}

	first, err := engine.Rank(context.Background(), job, candidates)
	require.NoError(t, err)
	second, err := engine.Rank(context.Background(), job, candidates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRankCardinalityPreserved(t *testing.T) {
	engine := NewEngine(newFakeEmbedder(), 2)

	var candidates []CandidateDocument
	for i := 0; i < 25; i++ {
		candidates = append(candidates, CandidateDocument{
			ID:   fmt.Sprintf("resume-%d", i),
			Text: fmt.Sprintf("skill%d backend databases", i),
		})
	}

	results, err := engine.Rank(context.Background(), backendJob(t), candidates)
	require.NoError(t, err)
	require.Len(t, results, len(candidates))

	seen := map[string]int{}
	for _, r := range results {
		seen[r.ID]++
	}
	for _, c := range candidates {
		assert.Equal(t, 1, seen[c.ID], "id %s must appear exactly once", c.ID)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	engine := NewEngine(newFakeEmbedder(), 4)

	// Identical text produces identical scores; input order must survive.
	candidates := []CandidateDocument{
		{ID: "first", Text: "backend databases networking"},
		{ID: "second", Text: "backend databases networking"},
		{ID: "third", Text: "backend databases networking"},
	}

	results, err := engine.Rank(context.Background(), backendJob(t), candidates)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "first", results[0].ID)
	assert.Equal(t, "second", results[1].ID)
	assert.Equal(t, "third", results[2].ID)
}

func TestRankEmptyTextNeutral(t *testing.T) {
	embedder := newFakeEmbedder()
	engine := NewEngine(embedder, 4)

	results, err := engine.Rank(context.Background(), backendJob(t), []CandidateDocument{
		{ID: "empty", Text: ""},
		{ID: "blank", Text: "   \n\t  "},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, 0.0, r.Score)
		assert.Empty(t, r.Error)
	}

	// Only the query was embedded; empty candidates skip the provider.
	assert.Equal(t, 1, embedder.callCount())
}

func TestRankSelfSimilarityBound(t *testing.T) {
	engine := NewEngine(newFakeEmbedder(), 4)
	job := backendJob(t)

	candidates := []CandidateDocument{
		{ID: "other", Text: "warehouse logistics forklift operations"},
		{ID: "self", Text: job.QueryText()},
		{ID: "near", Text: "backend engineer distributed system databases"},
	}

	results, err := engine.Rank(context.Background(), job, candidates)
	require.NoError(t, err)

	assert.Equal(t, "self", results[0].ID)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	for _, r := range results[1:] {
		assert.LessOrEqual(t, r.Score, results[0].Score)
	}
}

func TestRankMonotonicOrdering(t *testing.T) {
	engine := NewEngine(newFakeEmbedder(), 4)

	candidates := []CandidateDocument{
		{ID: "1", Text: "backend databases networking distributed"},
		{ID: "2", Text: "painting sculpture gallery"},
		{ID: "3", Text: "rest apis backend system"},
		{ID: "4", Text: ""},
		{ID: "5", Text: "databases experience engineer"},
	}

	results, err := engine.Rank(context.Background(), backendJob(t), candidates)
	require.NoError(t, err)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRankPartialFailure(t *testing.T) {
	embedder := newFakeEmbedder()
	embedder.failFor["corrupted resume text"] = errors.New("tokenizer exploded")
	engine := NewEngine(embedder, 4)

	results, err := engine.Rank(context.Background(), backendJob(t), []CandidateDocument{
		{ID: "good", Text: "backend databases networking"},
		{ID: "bad", Text: "corrupted resume text"},
		{ID: "fine", Text: "rest apis distributed system"},
	})
	require.NoError(t, err, "one bad document must not abort the batch")
	require.Len(t, results, 3)

	byID := map[string]RankedResult{}
	for _, r := range results {
		byID[r.ID] = r
	}

	assert.Equal(t, 0.0, byID["bad"].Score)
	assert.Contains(t, byID["bad"].Error, "tokenizer exploded")
	assert.Greater(t, byID["good"].Score, 0.0)
	assert.Empty(t, byID["good"].Error)
	assert.Greater(t, byID["fine"].Score, 0.0)
}

func TestRankQueryFailure(t *testing.T) {
	embedder := newFakeEmbedder()
	embedder.failAll = ErrModelUnavailable
	engine := NewEngine(embedder, 4)

	results, err := engine.Rank(context.Background(), backendJob(t), []CandidateDocument{
		{ID: "a", Text: "backend databases"},
	})
	assert.Nil(t, results, "no partial ranking without a query embedding")
	assert.ErrorIs(t, err, ErrRankingFailed)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestRankCancelled(t *testing.T) {
	engine := NewEngine(newFakeEmbedder(), 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := engine.Rank(ctx, backendJob(t), []CandidateDocument{
		{ID: "a", Text: "backend databases"},
	})
	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestRankZeroNormVector(t *testing.T) {
	// Punctuation-only text tokenizes to no words, so the fake returns a
	// genuine zero vector. Cosine against it must stay defined.
	engine := NewEngine(newFakeEmbedder(), 4)

	results, err := engine.Rank(context.Background(), backendJob(t), []CandidateDocument{
		{ID: "punct", Text: "???"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Score)
	assert.Empty(t, results[0].Error)
}

func TestEmbedBatchMatchesSingle(t *testing.T) {
	embedder := newFakeEmbedder()
	ctx := context.Background()

	texts := []string{"backend databases", "marketing outreach", ""}

	batch, err := embedder.EmbedBatch(ctx, texts)
	require.NoError(t, err)
	require.Len(t, batch, len(texts))

	for i, text := range texts {
		single, err := embedder.Embed(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, single, batch[i])
	}
}

func TestScoreBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, BandExcellent},
		{0.8, BandExcellent},
		{0.79, BandGood},
		{0.6, BandGood},
		{0.59, BandNeedsImprovement},
		{0.4, BandNeedsImprovement},
		{0.39, BandPoor},
		{0.0, BandPoor},
		{-0.2, BandPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreBand(tt.score), "score %.2f", tt.score)
	}
}
