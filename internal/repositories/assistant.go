package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-manager/internal/models"
)

type AssistantRepository interface {
	SaveEnhancement(enhancement *models.Enhancement) error
	SaveChatLog(chatLog *models.ChatLog) error
}

type assistantRepository struct {
	db *gorm.DB
}

func NewAssistantRepository(db *gorm.DB) AssistantRepository {
	return &assistantRepository{db: db}
}

// SaveEnhancement implements AssistantRepository.
func (a *assistantRepository) SaveEnhancement(enhancement *models.Enhancement) error {
	if err := a.db.Create(enhancement).Error; err != nil {
		return fmt.Errorf("failed to save enhancement: %w", err)
	}

	return nil
}

// SaveChatLog implements AssistantRepository.
func (a *assistantRepository) SaveChatLog(chatLog *models.ChatLog) error {
	if err := a.db.Create(chatLog).Error; err != nil {
		return fmt.Errorf("failed to save chat log: %w", err)
	}

	return nil
}
