package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-manager/internal/models"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id uuid.UUID) (*models.Resume, error)
	FindByIDs(ids []uuid.UUID, owner string) ([]models.Resume, error)
	FindByOwner(owner string) ([]models.Resume, error)
	FindAll() ([]models.Resume, error)
	FindRecentByOwner(owner string, limit int) ([]models.Resume, error)
	CountByOwner(owner string) (int64, error)
	Delete(id uuid.UUID, owner string) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// FindByIDs implements ResumeRepository. Only resumes belonging to owner are
// returned; foreign IDs are silently dropped.
func (r *resumeRepository) FindByIDs(ids []uuid.UUID, owner string) ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Where("id IN ? AND uploaded_by = ?", ids, owner).Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to find resumes: %w", err)
	}

	return resumes, nil
}

// FindByOwner implements ResumeRepository.
func (r *resumeRepository) FindByOwner(owner string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("uploaded_by = ?", owner).
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

// FindAll implements ResumeRepository. Used by maintenance scripts that walk
// the whole resume table regardless of owner.
func (r *resumeRepository) FindAll() ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Order("created_at ASC").Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

// FindRecentByOwner implements ResumeRepository.
func (r *resumeRepository) FindRecentByOwner(owner string, limit int) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("uploaded_by = ?", owner).
		Order("created_at DESC").
		Limit(limit).
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent resumes: %w", err)
	}

	return resumes, nil
}

// CountByOwner implements ResumeRepository.
func (r *resumeRepository) CountByOwner(owner string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Resume{}).Where("uploaded_by = ?", owner).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}

	return count, nil
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(id uuid.UUID, owner string) error {
	result := r.db.Where("id = ? AND uploaded_by = ?", id, owner).Delete(&models.Resume{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}

	return nil
}
