package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "ai_resume_manager", cfg.Database.DBName)
	assert.Equal(t, "resume_embeddings", cfg.Qdrant.Collection)
	assert.Equal(t, 3, cfg.Worker.Concurrency)
	assert.Equal(t, 4, cfg.Worker.EmbedWorkers)
	assert.Equal(t, 120*time.Second, cfg.Worker.AnalysisTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenLifetime)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "resumes_test")
	t.Setenv("WORKER_CONCURRENCY", "7")
	t.Setenv("ANALYSIS_TIMEOUT", "45s")
	t.Setenv("TOKEN_LIFETIME", "1h")
	t.Setenv("GEMINI_MAX_RETRIES", "5")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "resumes_test", cfg.Database.DBName)
	assert.Equal(t, 7, cfg.Worker.Concurrency)
	assert.Equal(t, 45*time.Second, cfg.Worker.AnalysisTimeout)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 5, cfg.Gemini.MaxRetries)
}

func TestInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "not-a-number")
	t.Setenv("ANALYSIS_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 3, cfg.Worker.Concurrency)
	assert.Equal(t, 120*time.Second, cfg.Worker.AnalysisTimeout)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     "5433",
			User:     "app",
			Password: "pw",
			DBName:   "resumes",
		},
	}

	dsn := cfg.GetDatabaseDSN()
	assert.Equal(t, "host=db.internal port=5433 user=app password=pw dbname=resumes sslmode=disable", dsn)
}
