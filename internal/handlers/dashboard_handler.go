package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/repositories"
)

// resumeTemplates is the static catalog the frontend renders; there is no
// template persistence.
var resumeTemplates = []models.Template{
	{ID: 1, Name: "Professional", Description: "Clean and modern design perfect for corporate roles",
		Preview: "https://images.pexels.com/photos/7688336/pexels-photo-7688336.jpeg?auto=compress&cs=tinysrgb&w=300", Category: "Corporate"},
	{ID: 2, Name: "Creative", Description: "Eye-catching design for creative professionals",
		Preview: "https://images.pexels.com/photos/7688330/pexels-photo-7688330.jpeg?auto=compress&cs=tinysrgb&w=300", Category: "Creative"},
	{ID: 3, Name: "Technical", Description: "Focused layout highlighting technical skills",
		Preview: "https://images.pexels.com/photos/7688334/pexels-photo-7688334.jpeg?auto=compress&cs=tinysrgb&w=300", Category: "Technical"},
	{ID: 4, Name: "Executive", Description: "Sophisticated design for senior-level positions",
		Preview: "https://images.pexels.com/photos/7688338/pexels-photo-7688338.jpeg?auto=compress&cs=tinysrgb&w=300", Category: "Executive"},
}

type DashboardHandler struct {
	resumeRepo   repositories.ResumeRepository
	jobRepo      repositories.JobRepository
	analysisRepo repositories.AnalysisRepository
}

func NewDashboardHandler(
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobRepository,
	analysisRepo repositories.AnalysisRepository,
) *DashboardHandler {
	return &DashboardHandler{
		resumeRepo:   resumeRepo,
		jobRepo:      jobRepo,
		analysisRepo: analysisRepo,
	}
}

// HandleTemplates handles GET /templates
func (h *DashboardHandler) HandleTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": resumeTemplates,
	})
}

// HandleStats handles GET /dashboard/stats
func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	owner := currentUserEmail(c)

	totalResumes, err := h.resumeRepo.CountByOwner(owner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard stats",
		})
	}

	totalJobs, err := h.jobRepo.CountByOwner(owner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard stats",
		})
	}

	totalAnalyses, err := h.analysisRepo.CountByOwner(owner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard stats",
		})
	}

	recent, err := h.resumeRepo.FindRecentByOwner(owner, 5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard stats",
		})
	}

	recentSummaries := make([]models.ResumeSummary, 0, len(recent))
	for i := range recent {
		resume := &recent[i]
		recentSummaries = append(recentSummaries, models.ResumeSummary{
			ID:          resume.ID.String(),
			Filename:    resume.OriginalFileName,
			ContentType: resume.ContentType,
			UploadedAt:  resume.CreatedAt,
		})
	}

	return c.JSON(models.DashboardStats{
		TotalResumes:  totalResumes,
		TotalJobs:     totalJobs,
		TotalAnalyses: totalAnalyses,
		RecentResumes: recentSummaries,
	})
}
