package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupports(t *testing.T) {
	extractor := NewExtractorService()

	assert.True(t, extractor.Supports(ContentTypePDF))
	assert.True(t, extractor.Supports(ContentTypeDOCX))
	assert.True(t, extractor.Supports(ContentTypeText))
	assert.False(t, extractor.Supports("image/png"))
	assert.False(t, extractor.Supports(""))
}

func TestExtractPlainText(t *testing.T) {
	extractor := NewExtractorService()

	text, err := extractor.ExtractText(ContentTypeText, []byte("  Senior Go Engineer  \n\n  5 years backend experience  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer\n5 years backend experience", text)
}

func TestExtractUnsupportedType(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.ExtractText("application/zip", []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestExtractCorruptPDF(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.ExtractText(ContentTypePDF, []byte("not a pdf at all"))
	assert.Error(t, err)
}

func TestExtractCorruptDOCX(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.ExtractText(ContentTypeDOCX, []byte("not a zip archive"))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims surrounding whitespace",
			input:    "   hello world   ",
			expected: "hello world",
		},
		{
			name:     "drops blank lines",
			input:    "line one\n\n\n   \nline two",
			expected: "line one\nline two",
		},
		{
			name:     "trims each line",
			input:    "  indented  \n\ttabbed\t",
			expected: "indented\ntabbed",
		},
		{
			name:     "empty input stays empty",
			input:    "   \n \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
