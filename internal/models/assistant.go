package models

import (
	"time"

	"github.com/google/uuid"
)

type Enhancement struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OriginalText string    `gorm:"type:text" json:"original_text"`
	TargetJob    string    `gorm:"type:text" json:"target_job"`
	Suggestions  string    `gorm:"type:text" json:"suggestions"`
	UserEmail    string    `gorm:"type:text;index" json:"user_email"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (e *Enhancement) TableName() string {
	return "enhancements"
}

type ChatLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserMessage string    `gorm:"type:text" json:"user_message"`
	AIResponse  string    `gorm:"type:text" json:"ai_response"`
	UserEmail   string    `gorm:"type:text;index" json:"user_email"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (c *ChatLog) TableName() string {
	return "chat_logs"
}
