package handlers

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-manager/internal/services"
)

func TestResolveContentType(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		filename string
		want     string
	}{
		{
			name:     "plain header",
			header:   services.ContentTypePDF,
			filename: "cv.pdf",
			want:     services.ContentTypePDF,
		},
		{
			name:     "header with charset parameter",
			header:   "text/plain; charset=utf-8",
			filename: "cv.txt",
			want:     services.ContentTypeText,
		},
		{
			name:     "docx header with parameter",
			header:   services.ContentTypeDOCX + "; name=cv.docx",
			filename: "cv.docx",
			want:     services.ContentTypeDOCX,
		},
		{
			name:     "extension fallback pdf",
			header:   "",
			filename: "cv.pdf",
			want:     services.ContentTypePDF,
		},
		{
			name:     "extension fallback uppercase",
			header:   "",
			filename: "CV.DOCX",
			want:     services.ContentTypeDOCX,
		},
		{
			name:     "unknown extension",
			header:   "",
			filename: "cv.exe",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &multipart.FileHeader{
				Filename: tt.filename,
				Header:   textproto.MIMEHeader{},
			}
			if tt.header != "" {
				file.Header.Set("Content-Type", tt.header)
			}

			assert.Equal(t, tt.want, resolveContentType(file))
		})
	}
}
