package services

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"google.golang.org/genai"

	"alfredoptarigan/resume-manager/internal/ranking"
)

// maxEmbedBytes is the prefix kept before embedding. text-embedding-004 tops
// out around 10000 tokens, so longer resumes are truncated, never rejected.
const maxEmbedBytes = 40000

type GeminiService interface {
	ranking.Embedder
	Available() bool
	GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxTokens int32, maxRetries int) (string, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

// NewGeminiService creates the Gemini client once for the process lifetime.
// If the client cannot be created (missing key, unreachable backend) the
// service still constructs, and every model call returns
// ranking.ErrModelUnavailable instead of crashing the process.
func NewGeminiService(apiKey string) GeminiService {
	svc := &geminiService{
		modelName:  "gemini-2.5-flash",
		embedModel: "text-embedding-004",
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("⚠️  Gemini client unavailable: %v. AI endpoints will fail until restart.\n", err)
		return svc
	}

	svc.client = client
	return svc
}

// Available implements GeminiService. False when client creation failed at
// startup; model calls return ranking.ErrModelUnavailable until a restart.
func (g *geminiService) Available() bool {
	return g.client != nil
}

// Embed implements ranking.Embedder.
func (g *geminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	if g.client == nil {
		return nil, ranking.ErrModelUnavailable
	}

	text = truncateForEmbed(text)

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// EmbedBatch implements ranking.Embedder. All texts go out in one request;
// the response preserves input order.
func (g *geminiService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if g.client == nil {
		return nil, ranking.ErrModelUnavailable
	}
	if len(texts) == 0 {
		return nil, nil
	}

	var contents []*genai.Content
	for _, text := range texts {
		contents = append(contents, genai.Text(truncateForEmbed(text))...)
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch embeddings: %w", err)
	}

	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("unexpected batch embedding result size")
	}

	vectors := make([][]float32, len(texts))
	for i, emb := range result.Embeddings {
		vectors[i] = emb.Values
	}

	return vectors, nil
}

// truncateForEmbed cuts text at maxEmbedBytes, backing off to a rune boundary
// so the payload stays valid UTF-8.
func truncateForEmbed(text string) string {
	if len(text) <= maxEmbedBytes {
		return text
	}

	cut := maxEmbedBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	if g.client == nil {
		return "", ranking.ErrModelUnavailable
	}

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// GenerateTextWithRetry implements GeminiService.
func (g *geminiService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxTokens int32, maxRetries int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := g.GenerateText(ctx, prompt, temperature, maxTokens)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			log.Printf("⚠️  Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}
