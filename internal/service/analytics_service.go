package service

import (
	"context"
	"time"

	"janseva/internal/dto"
	"janseva/internal/repository"

	"go.uber.org/zap"
)

const (
	defaultAnalyticsLimit = 20
	maxAnalyticsLimit     = 100
)

type AnalyticsService struct {
	interactions *repository.InteractionRepository
	faqs         *repository.FaqRepository
	schemes      *repository.SchemeRepository
	logger       *zap.Logger
}

func NewAnalyticsService(
	interactions *repository.InteractionRepository,
	faqs *repository.FaqRepository,
	schemes *repository.SchemeRepository,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		interactions: interactions,
		faqs:         faqs,
		schemes:      schemes,
		logger:       logger,
	}
}

// Overview returns the high-level dashboard metrics: total chats,
// the source breakdown and the ten most frequent intents.
func (s *AnalyticsService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	total, err := s.interactions.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	bySource, err := s.interactions.CountBySource(ctx)
	if err != nil {
		return nil, err
	}

	topIntents, err := s.interactions.TopIntents(ctx, nil, nil, 10)
	if err != nil {
		return nil, err
	}

	return &dto.OverviewResponse{
		TotalChats: total,
		BySource:   bySource,
		TopIntents: topIntents,
	}, nil
}

// TopIntents returns the most frequent intent labels, optionally
// windowed by [from, to]. Limit defaults to 20 and is capped at 100.
func (s *AnalyticsService) TopIntents(ctx context.Context, from, to *time.Time, limit int) ([]dto.IntentCount, error) {
	return s.interactions.TopIntents(ctx, from, to, clampLimit(limit))
}

// TopQueries returns the most frequently asked literal queries with
// the most recent timestamp per query.
func (s *AnalyticsService) TopQueries(ctx context.Context, limit int) ([]dto.QueryCount, error) {
	return s.interactions.TopQueries(ctx, clampLimit(limit))
}

// Sources returns interaction counts grouped by source.
func (s *AnalyticsService) Sources(ctx context.Context) ([]dto.SourceCount, error) {
	return s.interactions.CountBySource(ctx)
}

// DashboardStats returns the admin landing-page counters.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalChats, err := s.interactions.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	faqCount, err := s.faqs.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	schemeCount, err := s.schemes.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalChats: totalChats,
		Faqs:       faqCount,
		Schemes:    schemeCount,
	}, nil
}

func clampLimit(limit int) uint64 {
	if limit <= 0 {
		return defaultAnalyticsLimit
	}
	if limit > maxAnalyticsLimit {
		return maxAnalyticsLimit
	}
	return uint64(limit)
}
