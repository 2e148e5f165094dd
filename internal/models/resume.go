package models

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	ContentType      string    `gorm:"type:text" json:"content_type"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	Text             string    `gorm:"type:text" json:"-"`
	Size             int64     `gorm:"type:bigint" json:"size"`
	UploadedBy       string    `gorm:"type:text;index" json:"uploaded_by"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"uploaded_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

// TextPreview returns at most max bytes of the extracted text with an
// ellipsis when truncated. The cut backs off to a rune boundary so the
// preview stays valid UTF-8.
func (r *Resume) TextPreview(max int) string {
	if len(r.Text) <= max {
		return r.Text
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(r.Text[cut]) {
		cut--
	}
	return r.Text[:cut] + "..."
}
