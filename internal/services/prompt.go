package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildEnhancePrompt creates the prompt for resume improvement suggestions
func (pb *PromptBuilder) BuildEnhancePrompt(resumeText, targetJob string) string {
	return fmt.Sprintf(`You are a professional resume enhancer. Provide specific, actionable improvements to make the resume more compelling for the target job.

Enhance this resume for the job: %s

Resume:
%s`, targetJob, resumeText)
}

// BuildInterviewQuestionPrompt creates the prompt for interview question generation
func (pb *PromptBuilder) BuildInterviewQuestionPrompt(jobRole string) string {
	return fmt.Sprintf(`You are an experienced interviewer. Generate thoughtful interview questions for specific job roles.

Generate an interview question for a %s position. Make it specific and relevant.`, jobRole)
}

// BuildChatPrompt creates the prompt for the platform assistant chat
func (pb *PromptBuilder) BuildChatPrompt(message, context string) string {
	systemPrompt := `You are an AI assistant for an AI Resume Manager platform. You help users understand:
- How the resume ranking system works (semantic similarity between sentence embeddings)
- Best practices for resume writing
- Interview preparation tips
- Platform features and navigation

Be helpful, professional, and concise in your responses.`

	if context != "" {
		return fmt.Sprintf("%s\n\nContext: %s\n\nUser: %s\nAssistant:", systemPrompt, context, message)
	}

	return fmt.Sprintf("%s\n\nUser: %s\nAssistant:", systemPrompt, message)
}
