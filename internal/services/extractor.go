package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

// ExtractorService turns an uploaded resume into plain text. Extraction
// failures are the caller's to absorb: a resume that cannot be extracted is
// stored with empty text and scores neutral, it never blocks an analysis.
type ExtractorService interface {
	ExtractText(contentType string, data []byte) (string, error)
	Supports(contentType string) bool
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// Supports implements ExtractorService.
func (e *extractorService) Supports(contentType string) bool {
	switch contentType {
	case ContentTypePDF, ContentTypeDOCX, ContentTypeText:
		return true
	}
	return false
}

// ExtractText implements ExtractorService.
func (e *extractorService) ExtractText(contentType string, data []byte) (string, error) {
	switch contentType {
	case ContentTypeText:
		return CleanText(string(data)), nil
	case ContentTypePDF:
		return e.extractPDF(data)
	case ContentTypeDOCX:
		return e.extractDOCX(data)
	default:
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}

func (e *extractorService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log-free skip: a broken page should not sink the document
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func (e *extractorService) extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	text := CleanText(doc.Editable().GetContent())
	if text == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return text, nil
}

// CleanText trims each line and drops empty ones so previews and embeddings
// work from compact text.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
