package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/repositories"
	"alfredoptarigan/resume-manager/internal/services"
)

type AnalyzeHandler struct {
	jobRepo      repositories.JobRepository
	analysisRepo repositories.AnalysisRepository
	worker       services.Worker
}

func NewAnalyzeHandler(
	jobRepo repositories.JobRepository,
	analysisRepo repositories.AnalysisRepository,
	worker services.Worker,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		jobRepo:      jobRepo,
		analysisRepo: analysisRepo,
		worker:       worker,
	}
}

// HandleAnalyze handles POST /jobs/analyze. The job is persisted, an analysis
// is queued and its ID returned immediately; results arrive via GET
// /analyses/:id once a worker has ranked the resumes.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	owner := currentUserEmail(c)

	job := &models.Job{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		CreatedBy:    owner,
		CreatedAt:    time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	analysis := &models.Analysis{
		ID:         uuid.New(),
		JobID:      job.ID,
		Status:     models.StatusQueued,
		ResumeIDs:  models.StringList(req.ResumeIDs),
		AnalyzedBy: owner,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create analysis job",
		})
	}

	h.worker.EnqueueJob(analysis.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:     analysis.ID.String(),
		JobID:  job.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleGetAnalysis handles GET /analyses/:id
func (h *AnalyzeHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil || analysis.AnalyzedBy != currentUserEmail(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	response := models.AnalysisResponse{
		ID:     analysis.ID.String(),
		JobID:  analysis.JobID.String(),
		Status: string(analysis.Status),
	}

	if analysis.Status == models.StatusCompleted {
		response.TotalResumes = analysis.ResumeCount
		response.RankedResumes = analysis.RankedResumes
	}

	if analysis.Status == models.StatusFailed && analysis.ErrorMessage != "" {
		response.ErrorMessage = &analysis.ErrorMessage
	}

	return c.JSON(response)
}
