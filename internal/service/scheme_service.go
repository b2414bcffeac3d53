package service

import (
	"context"
	"errors"
	"time"

	"janseva/internal/dto"
	"janseva/internal/models"
	"janseva/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrSchemeNotFound    = errors.New("scheme not found")
	ErrSchemeNameMissing = errors.New("scheme name is required")
)

type SchemeService struct {
	repo       *repository.SchemeRepository
	rebuilders []Rebuilder
	logger     *zap.Logger
}

func NewSchemeService(repo *repository.SchemeRepository, rebuilders []Rebuilder, logger *zap.Logger) *SchemeService {
	return &SchemeService{
		repo:       repo,
		rebuilders: rebuilders,
		logger:     logger,
	}
}

func (s *SchemeService) Create(ctx context.Context, req *dto.CreateSchemeRequest) (*models.Scheme, error) {
	now := time.Now()
	scheme := &models.Scheme{
		ID:                uuid.New(),
		SchemeName:        req.SchemeName,
		Category:          req.Category,
		ShortDescription:  req.ShortDescription,
		Description:       req.Description,
		Eligibility:       req.Eligibility,
		Benefits:          req.Benefits,
		DocumentsRequired: req.DocumentsRequired,
		HowToApply:        req.HowToApply,
		OfficialLink:      req.OfficialLink,
		Keywords:          req.Keywords,
		State:             req.State,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	scheme.Normalize()

	if scheme.SchemeName == "" {
		return nil, ErrSchemeNameMissing
	}

	if err := s.repo.Create(ctx, scheme); err != nil {
		return nil, err
	}

	s.rebuild(ctx)
	return scheme, nil
}

func (s *SchemeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Scheme, error) {
	scheme, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSchemeNotFound
	}
	if err != nil {
		return nil, err
	}
	return scheme, nil
}

// List returns schemes filtered by category/state, or ranked by
// relevance when a full-text query is given.
func (s *SchemeService) List(ctx context.Context, queryText string, filter repository.SchemeFilter) ([]*models.Scheme, error) {
	if queryText != "" {
		return s.repo.SearchRanked(ctx, queryText, filter)
	}
	return s.repo.List(ctx, filter)
}

func (s *SchemeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSchemeRequest) (*models.Scheme, error) {
	scheme, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SchemeName != nil {
		scheme.SchemeName = *req.SchemeName
	}
	if req.Category != nil {
		scheme.Category = *req.Category
	}
	if req.ShortDescription != nil {
		scheme.ShortDescription = *req.ShortDescription
	}
	if req.Description != nil {
		scheme.Description = *req.Description
	}
	if req.Eligibility != nil {
		scheme.Eligibility = *req.Eligibility
	}
	if req.Benefits != nil {
		scheme.Benefits = *req.Benefits
	}
	if req.DocumentsRequired != nil {
		scheme.DocumentsRequired = *req.DocumentsRequired
	}
	if req.HowToApply != nil {
		scheme.HowToApply = *req.HowToApply
	}
	if req.OfficialLink != nil {
		scheme.OfficialLink = *req.OfficialLink
	}
	if req.Keywords != nil {
		scheme.Keywords = *req.Keywords
	}
	if req.State != nil {
		scheme.State = *req.State
	}

	scheme.Normalize()
	if scheme.SchemeName == "" {
		return nil, ErrSchemeNameMissing
	}

	scheme.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, scheme); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchemeNotFound
		}
		return nil, err
	}

	s.rebuild(ctx)
	return scheme, nil
}

func (s *SchemeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSchemeNotFound
	}
	if err != nil {
		return err
	}

	s.rebuild(ctx)
	return nil
}

func (s *SchemeService) rebuild(ctx context.Context) {
	for _, r := range s.rebuilders {
		if err := r.Rebuild(ctx); err != nil {
			s.logger.Warn("Rebuild after scheme mutation failed", zap.Error(err))
		}
	}
}
