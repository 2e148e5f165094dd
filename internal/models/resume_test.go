package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTextPreview(t *testing.T) {
	resume := &Resume{Text: "short"}
	assert.Equal(t, "short", resume.TextPreview(10))

	resume = &Resume{Text: "hello world"}
	assert.Equal(t, "hello...", resume.TextPreview(5))
}

func TestTextPreviewKeepsValidUTF8(t *testing.T) {
	// "é" is two bytes; cutting at byte 2 would split it.
	resume := &Resume{Text: "héllo wörld"}
	preview := resume.TextPreview(2)
	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, "h...", preview)

	resume = &Resume{Text: strings.Repeat("日", 100)}
	preview = resume.TextPreview(10)
	assert.True(t, utf8.ValidString(preview))
	assert.True(t, strings.HasSuffix(preview, "..."))
	assert.LessOrEqual(t, len(preview), 10+len("..."))
}
