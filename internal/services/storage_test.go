package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resumes", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["resumes"][0]
}

func TestSaveFileRejectsUnknownExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	header := multipartFileHeader(t, "resume.exe", "payload")
	_, _, err := storage.SaveFile(header)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file extension")
}

func TestSaveFileWritesUniqueName(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	header := multipartFileHeader(t, "my resume.TXT", "hello resume")
	filename, path, err := storage.SaveFile(header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "resume_"))
	assert.True(t, strings.HasSuffix(filename, ".txt"))
	assert.Equal(t, filepath.Join(dir, filename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello resume", string(data))
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	header := multipartFileHeader(t, "resume.txt", "content")
	filename, path, err := storage.SaveFile(header)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(filename))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, storage.DeleteFile("missing.txt"))
}
