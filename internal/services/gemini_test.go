package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-manager/internal/ranking"
)

func TestTruncateForEmbedShortTextUntouched(t *testing.T) {
	assert.Equal(t, "hello", truncateForEmbed("hello"))
	assert.Equal(t, "", truncateForEmbed(""))
}

func TestTruncateForEmbedRuneBoundary(t *testing.T) {
	// Offset by one byte so the cut lands mid-rune and must back off.
	long := "a" + strings.Repeat("é", maxEmbedBytes)

	got := truncateForEmbed(long)
	assert.Equal(t, maxEmbedBytes-1, len(got))
	assert.True(t, utf8.ValidString(got))
}

func TestGeminiNilClientDegrades(t *testing.T) {
	svc := &geminiService{
		modelName:  "gemini-2.5-flash",
		embedModel: "text-embedding-004",
	}

	assert.False(t, svc.Available())

	_, err := svc.Embed(context.Background(), "text")
	assert.ErrorIs(t, err, ranking.ErrModelUnavailable)

	_, err = svc.EmbedBatch(context.Background(), []string{"text"})
	assert.ErrorIs(t, err, ranking.ErrModelUnavailable)

	_, err = svc.GenerateText(context.Background(), "prompt", 0.5, 100)
	assert.ErrorIs(t, err, ranking.ErrModelUnavailable)
}
