package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/ranking"
	"alfredoptarigan/resume-manager/internal/repositories"
)

const previewLength = 300

// AnalyzerService runs one queued analysis end to end: load the job and the
// owner's resumes, rank them with the embedding engine and persist the
// ordered results with presentation metadata attached.
type AnalyzerService interface {
	RunAnalysis(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	analysisRepo repositories.AnalysisRepository
	jobRepo      repositories.JobRepository
	resumeRepo   repositories.ResumeRepository
	engine       *ranking.Engine
	timeout      time.Duration
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	jobRepo repositories.JobRepository,
	resumeRepo repositories.ResumeRepository,
	engine *ranking.Engine,
	timeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		analysisRepo: analysisRepo,
		jobRepo:      jobRepo,
		resumeRepo:   resumeRepo,
		engine:       engine,
		timeout:      timeout,
	}
}

// RunAnalysis implements AnalyzerService.
func (a *analyzerService) RunAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	job, err := a.jobRepo.FindByID(analysis.JobID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("job not found: %v", err))
		return fmt.Errorf("failed to get job: %w", err)
	}

	resumes, err := a.loadResumes(analysis)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return err
	}

	profile, err := ranking.NewJobProfile(job.Title, job.Description, job.Requirements)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("invalid job profile: %w", err)
	}

	candidates := make([]ranking.CandidateDocument, 0, len(resumes))
	byID := make(map[string]*models.Resume, len(resumes))
	for i := range resumes {
		resume := &resumes[i]
		byID[resume.ID.String()] = resume
		candidates = append(candidates, ranking.CandidateDocument{
			ID:   resume.ID.String(),
			Text: resume.Text,
		})
	}

	log.Printf("🤖 Ranking %d resumes against job '%s'...\n", len(candidates), job.Title)

	rankCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	results, err := a.engine.Rank(rankCtx, profile, candidates)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("ranking failed: %v", err))
		return fmt.Errorf("failed to rank resumes: %w", err)
	}

	ranked := make(models.RankedResumes, 0, len(results))
	for _, result := range results {
		entry := models.RankedResume{
			ResumeID:        result.ID,
			SimilarityScore: result.Score,
			MatchPercentage: math.Round(result.Score*10000) / 100,
			MatchBand:       ranking.ScoreBand(result.Score),
			Error:           result.Error,
		}

		if resume, ok := byID[result.ID]; ok {
			entry.Filename = resume.OriginalFileName
			entry.TextPreview = resume.TextPreview(previewLength)
			uploadedAt := resume.CreatedAt
			entry.UploadedAt = &uploadedAt
		}

		ranked = append(ranked, entry)
	}

	if err := a.analysisRepo.UpdateResult(analysisID, ranked); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Analysis %s completed with %d ranked resumes\n", analysisID, len(ranked))
	return nil
}

// loadResumes resolves which resumes the analysis covers: the explicitly
// requested IDs, or everything the requester uploaded.
func (a *analyzerService) loadResumes(analysis *models.Analysis) ([]models.Resume, error) {
	if len(analysis.ResumeIDs) == 0 {
		resumes, err := a.resumeRepo.FindByOwner(analysis.AnalyzedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to load resumes: %w", err)
		}
		return resumes, nil
	}

	ids := make([]uuid.UUID, 0, len(analysis.ResumeIDs))
	for _, raw := range analysis.ResumeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	resumes, err := a.resumeRepo.FindByIDs(ids, analysis.AnalyzedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to load resumes: %w", err)
	}

	return resumes, nil
}
