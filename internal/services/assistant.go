package services

import (
	"context"
	"log"
	"strings"

	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/repositories"
)

// Fallback copy when the generative model is unreachable. The endpoints stay
// useful instead of erroring out.
const (
	fallbackQuestion = "What motivated you to apply for this position, and what unique value would you bring to our team?"
	fallbackChat     = "I'm experiencing some technical difficulties. Please try again later or contact support."
)

// AssistantService covers the stateless generative features: resume
// enhancement suggestions, interview questions and the platform chat. Each is
// one prompt in, one text out; provider failures degrade to canned replies.
type AssistantService interface {
	EnhanceResume(ctx context.Context, userEmail, resumeText, targetJob string) (string, error)
	InterviewQuestion(ctx context.Context, jobRole string) string
	Chat(ctx context.Context, userEmail, message, chatContext string) string
}

type assistantService struct {
	gemini        GeminiService
	assistantRepo repositories.AssistantRepository
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewAssistantService(
	gemini GeminiService,
	assistantRepo repositories.AssistantRepository,
	maxRetries int,
) AssistantService {
	return &assistantService{
		gemini:        gemini,
		assistantRepo: assistantRepo,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// EnhanceResume implements AssistantService.
func (a *assistantService) EnhanceResume(ctx context.Context, userEmail, resumeText, targetJob string) (string, error) {
	prompt := a.promptBuilder.BuildEnhancePrompt(resumeText, targetJob)

	suggestions, err := a.gemini.GenerateTextWithRetry(ctx, prompt, 0.5, 500, a.maxRetries)
	if err != nil {
		log.Printf("❌ Resume enhancement failed: %v\n", err)
		return "", err
	}

	suggestions = strings.TrimSpace(suggestions)

	enhancement := &models.Enhancement{
		OriginalText: resumeText,
		TargetJob:    targetJob,
		Suggestions:  suggestions,
		UserEmail:    userEmail,
	}
	if err := a.assistantRepo.SaveEnhancement(enhancement); err != nil {
		log.Printf("⚠️  Failed to save enhancement history: %v\n", err)
	}

	return suggestions, nil
}

// InterviewQuestion implements AssistantService.
func (a *assistantService) InterviewQuestion(ctx context.Context, jobRole string) string {
	prompt := a.promptBuilder.BuildInterviewQuestionPrompt(jobRole)

	question, err := a.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, 150, a.maxRetries)
	if err != nil {
		log.Printf("⚠️  Interview question generation failed: %v\n", err)
		return fallbackQuestion
	}

	return strings.TrimSpace(question)
}

// Chat implements AssistantService.
func (a *assistantService) Chat(ctx context.Context, userEmail, message, chatContext string) string {
	prompt := a.promptBuilder.BuildChatPrompt(message, chatContext)

	reply, err := a.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, 300, a.maxRetries)
	if err != nil {
		log.Printf("⚠️  Chat generation failed: %v\n", err)
		return fallbackChat
	}

	reply = strings.TrimSpace(reply)

	chatLog := &models.ChatLog{
		UserMessage: message,
		AIResponse:  reply,
		UserEmail:   userEmail,
	}
	if err := a.assistantRepo.SaveChatLog(chatLog); err != nil {
		log.Printf("⚠️  Failed to save chat log: %v\n", err)
	}

	return reply
}
