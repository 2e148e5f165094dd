package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text;not null" json:"requirements"`
	CreatedBy    string    `gorm:"type:text;index" json:"created_by"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// RankedResume is one scored entry of an analysis, with the presentation
// metadata the frontend renders alongside the raw similarity score.
type RankedResume struct {
	ResumeID        string     `json:"id"`
	Filename        string     `json:"filename"`
	SimilarityScore float64    `json:"similarity_score"`
	MatchPercentage float64    `json:"match_percentage"`
	MatchBand       string     `json:"match_band"`
	TextPreview     string     `json:"text_preview"`
	UploadedAt      *time.Time `json:"uploaded_at,omitempty"`
	Error           string     `json:"error,omitempty"`
}

// RankedResumes is stored as a jsonb column on the analysis row.
type RankedResumes []RankedResume

func (r RankedResumes) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *RankedResumes) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported type for ranked resumes: %T", value)
	}
}

// StringList is stored as a jsonb column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for string list: %T", value)
	}
}

type Analysis struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID         uuid.UUID      `gorm:"type:uuid;not null" json:"job_id"`
	Status        AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	ResumeIDs     StringList     `gorm:"type:jsonb" json:"resume_ids,omitempty"`
	RankedResumes RankedResumes  `gorm:"type:jsonb" json:"ranked_resumes,omitempty"`
	ResumeCount   int            `gorm:"type:int;default:0" json:"resume_count"`
	ErrorMessage  string         `gorm:"type:text" json:"error_message,omitempty"`
	AnalyzedBy    string         `gorm:"type:text;index" json:"analyzed_by"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Job Job `gorm:"foreignKey:JobID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
