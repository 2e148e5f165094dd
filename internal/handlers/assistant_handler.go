package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/services"
)

type AssistantHandler struct {
	assistant services.AssistantService
}

func NewAssistantHandler(assistant services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
	}
}

// HandleEnhanceResume handles POST /ai/enhance-resume
func (h *AssistantHandler) HandleEnhanceResume(c *fiber.Ctx) error {
	var req models.EnhanceRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	suggestions, err := h.assistant.EnhanceResume(c.Context(), currentUserEmail(c), req.ResumeText, req.TargetJob)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Enhancement service temporarily unavailable",
		})
	}

	return c.JSON(models.EnhanceResponse{
		Suggestions: suggestions,
	})
}

// HandleInterviewQuestion handles POST /ai/interview-question
func (h *AssistantHandler) HandleInterviewQuestion(c *fiber.Ctx) error {
	var req models.InterviewQuestionRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	question := h.assistant.InterviewQuestion(c.Context(), req.JobRole)

	return c.JSON(models.InterviewQuestionResponse{
		Question: question,
	})
}

// HandleChat handles POST /ai/chat
func (h *AssistantHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	reply := h.assistant.Chat(c.Context(), currentUserEmail(c), req.Message, req.Context)

	return c.JSON(models.ChatResponse{
		Response: reply,
	})
}
