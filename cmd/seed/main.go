package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"janseva/internal/dto"
	"janseva/internal/models"
	"janseva/internal/repository"
	"janseva/internal/service"
	"janseva/pkg/auth"
	"janseva/pkg/config"
	"janseva/pkg/logger"
	"janseva/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS admins (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'admin',
	last_login_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS faqs (
	id UUID PRIMARY KEY,
	question TEXT NOT NULL,
	answer TEXT NOT NULL,
	tags TEXT[] NOT NULL DEFAULT '{}',
	keywords TEXT[] NOT NULL DEFAULT '{}',
	department TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS faqs_search_idx ON faqs USING GIN (
	to_tsvector('english', question || ' ' || answer || ' ' ||
		array_to_string(tags, ' ') || ' ' || array_to_string(keywords, ' '))
);

CREATE TABLE IF NOT EXISTS schemes (
	id UUID PRIMARY KEY,
	scheme_name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	short_description TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	eligibility TEXT NOT NULL DEFAULT '',
	benefits TEXT NOT NULL DEFAULT '',
	documents_required TEXT[] NOT NULL DEFAULT '{}',
	how_to_apply TEXT NOT NULL DEFAULT '',
	official_link TEXT NOT NULL DEFAULT '',
	keywords TEXT[] NOT NULL DEFAULT '{}',
	state TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS schemes_search_idx ON schemes USING GIN (
	to_tsvector('english', scheme_name || ' ' || short_description || ' ' ||
		description || ' ' || array_to_string(keywords, ' '))
);

CREATE TABLE IF NOT EXISTS interactions (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL DEFAULT '',
	query TEXT NOT NULL,
	response TEXT NOT NULL,
	intent TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL,
	timestamp TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS interactions_intent_idx ON interactions (intent);
CREATE INDEX IF NOT EXISTS interactions_source_idx ON interactions (source);
CREATE INDEX IF NOT EXISTS interactions_timestamp_idx ON interactions (timestamp);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	faqRepo := repository.NewFaqRepository(db, appLogger)
	schemeRepo := repository.NewSchemeRepository(db, appLogger)
	adminRepo := repository.NewAdminRepository(db, appLogger)

	faqService := service.NewFaqService(faqRepo, nil, appLogger)
	schemeService := service.NewSchemeService(schemeRepo, nil, appLogger)

	seedDir := filepath.Join("cmd", "seed")
	if err := seedFaqs(ctx, filepath.Join(seedDir, "faqs.json"), faqRepo, faqService, appLogger); err != nil {
		appLogger.Fatal("Failed to seed FAQs", zap.Error(err))
	}
	if err := seedSchemes(ctx, filepath.Join(seedDir, "schemes.json"), schemeRepo, schemeService, appLogger); err != nil {
		appLogger.Fatal("Failed to seed schemes", zap.Error(err))
	}
	if err := seedAdmin(ctx, adminRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed admin", zap.Error(err))
	}

	appLogger.Info("Database seeding completed")
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}

func seedFaqs(ctx context.Context, path string, repo *repository.FaqRepository, svc *service.FaqService, logger *zap.Logger) error {
	count, err := repo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("FAQ corpus already seeded, skipping", zap.Int64("count", count))
		return nil
	}

	var entries []dto.CreateFaqRequest
	if err := loadJSON(path, &entries); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("No FAQ seed file found", zap.String("path", path))
			return nil
		}
		return err
	}

	for i := range entries {
		if _, err := svc.Create(ctx, &entries[i]); err != nil {
			return fmt.Errorf("faq %d: %w", i, err)
		}
	}

	logger.Info("FAQ corpus seeded", zap.Int("count", len(entries)))
	return nil
}

func seedSchemes(ctx context.Context, path string, repo *repository.SchemeRepository, svc *service.SchemeService, logger *zap.Logger) error {
	count, err := repo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Scheme corpus already seeded, skipping", zap.Int64("count", count))
		return nil
	}

	var entries []dto.CreateSchemeRequest
	if err := loadJSON(path, &entries); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("No scheme seed file found", zap.String("path", path))
			return nil
		}
		return err
	}

	for i := range entries {
		if _, err := svc.Create(ctx, &entries[i]); err != nil {
			return fmt.Errorf("scheme %d: %w", i, err)
		}
	}

	logger.Info("Scheme corpus seeded", zap.Int("count", len(entries)))
	return nil
}

func seedAdmin(ctx context.Context, repo *repository.AdminRepository, logger *zap.Logger) error {
	username := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_USERNAME")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		logger.Warn("SEED_ADMIN_USERNAME/SEED_ADMIN_PASSWORD not set, skipping admin creation")
		return nil
	}

	if existing, _ := repo.GetByUsername(ctx, username); existing != nil {
		logger.Info("Admin already exists, skipping", zap.String("username", username))
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	return repo.Create(ctx, &models.Admin{
		ID:        uuid.New(),
		Username:  username,
		Password:  hashed,
		Role:      "superadmin",
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func loadJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
