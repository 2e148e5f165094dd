package handlers

import (
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/repositories"
	"alfredoptarigan/resume-manager/internal/services"
)

type UploadHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	extractor      services.ExtractorService
	gemini         services.GeminiService
	vectorStore    services.VectorStoreService
	maxFileSize    int64
}

func NewUploadHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	extractor services.ExtractorService,
	gemini services.GeminiService,
	vectorStore services.VectorStoreService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		extractor:      extractor,
		gemini:         gemini,
		vectorStore:    vectorStore,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /resumes/upload. Accepts multiple files under the
// "resumes" field; unsupported types are skipped, extraction failures store
// an empty text so the resume still appears (and scores neutral) in analyses.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files, exists := form.File["resumes"]
	if !exists || len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files uploaded. Please upload 'resumes' as PDF, DOCX or TXT files.",
		})
	}

	owner := currentUserEmail(c)
	var uploaded []models.UploadedResume

	for _, file := range files {
		contentType := resolveContentType(file)
		if !h.extractor.Supports(contentType) {
			log.Printf("⚠️  Skipping %s: unsupported content type %s\n", file.Filename, contentType)
			continue
		}

		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("File %s too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}

		data, err := readFile(file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read %s: %v", file.Filename, err),
			})
		}

		filename, filePath, err := h.storageService.SaveFile(file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save %s: %v", file.Filename, err),
			})
		}

		// An unextractable file is stored with empty text rather than
		// rejected, so the analysis keeps its cardinality.
		text, err := h.extractor.ExtractText(contentType, data)
		if err != nil {
			log.Printf("⚠️  Failed to extract text from %s: %v\n", file.Filename, err)
			text = ""
		}

		resume := models.Resume{
			ID:               uuid.New(),
			Filename:         filename,
			OriginalFileName: file.Filename,
			ContentType:      contentType,
			FilePath:         filePath,
			Text:             text,
			Size:             file.Size,
			UploadedBy:       owner,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := h.resumeRepo.Create(&resume); err != nil {
			h.storageService.DeleteFile(filename)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save resume record: %v", err),
			})
		}

		uploaded = append(uploaded, models.UploadedResume{
			ID:          resume.ID.String(),
			Filename:    resume.OriginalFileName,
			TextPreview: resume.TextPreview(200),
		})

		h.indexResume(c, &resume)
	}

	if len(uploaded) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid files uploaded. Please upload 'resumes' as PDF, DOCX or TXT files.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Uploaded %d resumes", len(uploaded)),
		"resumes": uploaded,
	})
}

// indexResume embeds the resume text and upserts it into the vector store.
// Best effort: the index is an optimization, never a reason to fail an upload.
func (h *UploadHandler) indexResume(c *fiber.Ctx, resume *models.Resume) {
	if strings.TrimSpace(resume.Text) == "" {
		return
	}

	embedding, err := h.gemini.Embed(c.Context(), resume.Text)
	if err != nil {
		log.Printf("⚠️  Failed to embed resume %s: %v\n", resume.ID, err)
		return
	}

	if err := h.vectorStore.UpsertResume(c.Context(), resume.ID.String(), resume.UploadedBy, resume.OriginalFileName, embedding); err != nil {
		log.Printf("⚠️  Failed to index resume %s: %v\n", resume.ID, err)
	}
}

func resolveContentType(file *multipart.FileHeader) string {
	// Headers like "text/plain; charset=utf-8" must match on the media type
	// alone.
	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			return mediaType
		}
		return contentType
	}

	name := strings.ToLower(file.Filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return services.ContentTypePDF
	case strings.HasSuffix(name, ".docx"):
		return services.ContentTypeDOCX
	case strings.HasSuffix(name, ".txt"):
		return services.ContentTypeText
	}
	return ""
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
