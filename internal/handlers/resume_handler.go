package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/repositories"
	"alfredoptarigan/resume-manager/internal/services"
)

const similarResumeLimit = 5

type ResumeHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	gemini         services.GeminiService
	vectorStore    services.VectorStoreService
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	gemini services.GeminiService,
	vectorStore services.VectorStoreService,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		gemini:         gemini,
		vectorStore:    vectorStore,
	}
}

// HandleListResumes handles GET /resumes
func (h *ResumeHandler) HandleListResumes(c *fiber.Ctx) error {
	resumes, err := h.resumeRepo.FindByOwner(currentUserEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list resumes",
		})
	}

	summaries := make([]models.ResumeSummary, 0, len(resumes))
	for i := range resumes {
		resume := &resumes[i]
		summaries = append(summaries, models.ResumeSummary{
			ID:          resume.ID.String(),
			Filename:    resume.OriginalFileName,
			ContentType: resume.ContentType,
			TextPreview: resume.TextPreview(200),
			UploadedAt:  resume.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"resumes": summaries,
	})
}

// HandleSimilarResumes handles GET /resumes/:id/similar. The resume's text is
// embedded and matched against the owner's other resumes in the vector index.
func (h *ResumeHandler) HandleSimilarResumes(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	owner := currentUserEmail(c)

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil || resume.UploadedBy != owner {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	// A resume without extracted text has no embedding to compare with.
	if strings.TrimSpace(resume.Text) == "" {
		return c.JSON(fiber.Map{
			"similar": []models.SimilarResume{},
		})
	}

	embedding, err := h.gemini.Embed(c.Context(), resume.Text)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Similarity search temporarily unavailable",
		})
	}

	// Over-fetch by one so the resume itself can be dropped from its own
	// neighbourhood.
	matches, err := h.vectorStore.SearchSimilar(c.Context(), embedding, owner, similarResumeLimit+1)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search similar resumes",
		})
	}

	similar := make([]models.SimilarResume, 0, len(matches))
	for _, match := range matches {
		if match.ResumeID == resumeID.String() {
			continue
		}
		similar = append(similar, models.SimilarResume{
			ID:       match.ResumeID,
			Filename: match.Filename,
			Score:    float64(match.Score),
		})
		if len(similar) == similarResumeLimit {
			break
		}
	}

	return c.JSON(fiber.Map{
		"similar": similar,
	})
}

// HandleDeleteResume handles DELETE /resumes/:id
func (h *ResumeHandler) HandleDeleteResume(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	owner := currentUserEmail(c)

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil || resume.UploadedBy != owner {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found or you do not have permission to delete it",
		})
	}

	if err := h.resumeRepo.Delete(resumeID, owner); err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found or you do not have permission to delete it",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete resume",
		})
	}

	// Best-effort cleanup of the stored file and the vector index entry
	if err := h.storageService.DeleteFile(resume.Filename); err != nil {
		log.Printf("⚠️  Failed to delete stored file %s: %v\n", resume.Filename, err)
	}
	if err := h.vectorStore.DeleteResume(c.Context(), resumeID.String()); err != nil {
		log.Printf("⚠️  Failed to remove resume %s from vector index: %v\n", resumeID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Resume deleted successfully",
	})
}
