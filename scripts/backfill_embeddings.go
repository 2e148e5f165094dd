package main

import (
	"context"
	"log"
	"os"
	"strings"

	"alfredoptarigan/resume-manager/internal/config"
	"alfredoptarigan/resume-manager/internal/repositories"
	"alfredoptarigan/resume-manager/internal/services"
)

// Re-embeds every stored resume into Qdrant. Run after changing the embedding
// model or after restoring the database from a backup without the vector index.
func main() {
	log.Println("🚀 Starting embedding backfill...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	resumeRepo := repositories.NewResumeRepository(db)

	geminiService := services.NewGeminiService(cfg.Gemini.APIKey)

	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	ctx := context.Background()

	resumes, err := resumeRepo.FindAll()
	if err != nil {
		log.Fatalf("❌ Failed to list resumes: %v", err)
	}

	log.Printf("📄 Found %d resumes to backfill", len(resumes))

	successCount := 0
	skipCount := 0
	failCount := 0

	for i, resume := range resumes {
		log.Printf("\n📄 Processing %d/%d: %s", i+1, len(resumes), resume.OriginalFileName)
		log.Printf("   Owner: %s", resume.UploadedBy)

		if strings.TrimSpace(resume.Text) == "" {
			log.Printf("   ⚠️  No extracted text, skipping...")
			skipCount++
			continue
		}

		embedding, err := geminiService.Embed(ctx, resume.Text)
		if err != nil {
			log.Printf("   ❌ Failed to generate embedding: %v", err)
			failCount++
			continue
		}

		err = vectorStore.UpsertResume(ctx, resume.ID.String(), resume.UploadedBy, resume.OriginalFileName, embedding)
		if err != nil {
			log.Printf("   ❌ Failed to upsert embedding: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Embedded and stored (%d dimensions)", len(embedding))
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Backfill Summary:")
	log.Printf("   ✅ Successful: %d resumes", successCount)
	log.Printf("   ⚠️  Skipped (no text): %d resumes", skipCount)
	log.Printf("   ❌ Failed: %d resumes", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some resumes failed to backfill. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All resumes backfilled successfully!")
}
