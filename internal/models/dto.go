package models

import "time"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student recruiter admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MeResponse struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type UploadedResume struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	TextPreview string `json:"text_preview"`
}

type ResumeSummary struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	TextPreview string    `json:"text_preview"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type SimilarResume struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
}

type AnalyzeRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements string   `json:"requirements" validate:"required"`
	ResumeIDs    []string `json:"resume_ids" validate:"omitempty,dive,uuid"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type AnalysisResponse struct {
	ID            string        `json:"id"`
	JobID         string        `json:"job_id"`
	Status        string        `json:"status"`
	TotalResumes  int           `json:"total_resumes"`
	RankedResumes RankedResumes `json:"ranked_resumes,omitempty"`
	ErrorMessage  *string       `json:"error_message,omitempty"`
}

type EnhanceRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	TargetJob  string `json:"target_job" validate:"required"`
}

type EnhanceResponse struct {
	Suggestions string `json:"suggestions"`
}

type InterviewQuestionRequest struct {
	JobRole string `json:"job_role" validate:"required"`
}

type InterviewQuestionResponse struct {
	Question string `json:"question"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
	Category    string `json:"category"`
}

type DashboardStats struct {
	TotalResumes  int64           `json:"total_resumes"`
	TotalJobs     int64           `json:"total_jobs"`
	TotalAnalyses int64           `json:"total_analyses"`
	RecentResumes []ResumeSummary `json:"recent_resumes"`
}
