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
	ErrFaqNotFound     = errors.New("faq not found")
	ErrQuestionMissing = errors.New("question is required")
	ErrAnswerMissing   = errors.New("answer is required")
)

// Rebuilder is anything that derives state from the corpus and must be
// refreshed after a corpus mutation (search index, intent classifier).
type Rebuilder interface {
	Rebuild(ctx context.Context) error
}

type FaqService struct {
	repo       *repository.FaqRepository
	rebuilders []Rebuilder
	logger     *zap.Logger
}

func NewFaqService(repo *repository.FaqRepository, rebuilders []Rebuilder, logger *zap.Logger) *FaqService {
	return &FaqService{
		repo:       repo,
		rebuilders: rebuilders,
		logger:     logger,
	}
}

func (s *FaqService) Create(ctx context.Context, req *dto.CreateFaqRequest) (*models.Faq, error) {
	now := time.Now()
	faq := &models.Faq{
		ID:         uuid.New(),
		Question:   req.Question,
		Answer:     req.Answer,
		Tags:       req.Tags,
		Keywords:   req.Keywords,
		Department: req.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	faq.Normalize()

	if faq.Question == "" {
		return nil, ErrQuestionMissing
	}
	if faq.Answer == "" {
		return nil, ErrAnswerMissing
	}

	if err := s.repo.Create(ctx, faq); err != nil {
		return nil, err
	}

	s.rebuild(ctx)
	return faq, nil
}

func (s *FaqService) GetByID(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	faq, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFaqNotFound
	}
	if err != nil {
		return nil, err
	}
	return faq, nil
}

// List returns FAQs filtered by tags/department, or ranked by
// relevance when a full-text query is given.
func (s *FaqService) List(ctx context.Context, queryText string, filter repository.FaqFilter) ([]*models.Faq, error) {
	filter.Tags = models.NormalizeStringSet(filter.Tags)
	if queryText != "" {
		return s.repo.SearchRanked(ctx, queryText, filter.Limit)
	}
	return s.repo.List(ctx, filter)
}

func (s *FaqService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFaqRequest) (*models.Faq, error) {
	faq, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.Tags != nil {
		faq.Tags = *req.Tags
	}
	if req.Keywords != nil {
		faq.Keywords = *req.Keywords
	}
	if req.Department != nil {
		faq.Department = *req.Department
	}

	faq.Normalize()
	if faq.Question == "" {
		return nil, ErrQuestionMissing
	}
	if faq.Answer == "" {
		return nil, ErrAnswerMissing
	}

	faq.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, faq); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFaqNotFound
		}
		return nil, err
	}

	s.rebuild(ctx)
	return faq, nil
}

func (s *FaqService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrFaqNotFound
	}
	if err != nil {
		return err
	}

	s.rebuild(ctx)
	return nil
}

func (s *FaqService) rebuild(ctx context.Context) {
	for _, r := range s.rebuilders {
		if err := r.Rebuild(ctx); err != nil {
			s.logger.Warn("Rebuild after FAQ mutation failed", zap.Error(err))
		}
	}
}
