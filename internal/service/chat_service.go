package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"janseva/internal/dto"
	"janseva/internal/models"
	"janseva/internal/nlp"
	"janseva/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	emptyInputReply = "Please enter a valid question so I can help you."
	fallbackReply   = "Sorry, I couldn't find relevant information for your query. " +
		"Please try rephrasing or ask about Aadhaar, PAN, PM-Kisan, or scholarships."

	intentEmptyInput      = "empty_input"
	intentFallbackUnknown = "fallback_unknown"

	logTimeout = 5 * time.Second
)

type interactionRecorder interface {
	Create(ctx context.Context, in *models.Interaction) error
}

// ChatService resolves one chatbot turn: normalize the query, score it
// against both corpora, pick a reply by priority, and log the
// interaction without blocking the response.
type ChatService struct {
	matcher      Matcher
	interactions interactionRecorder
	replyCache   *cache.Cache
	logger       *zap.Logger

	wg sync.WaitGroup
}

func NewChatService(matcher Matcher, interactions interactionRecorder, replyCache *cache.Cache, logger *zap.Logger) *ChatService {
	return &ChatService{
		matcher:      matcher,
		interactions: interactions,
		replyCache:   replyCache,
		logger:       logger,
	}
}

// Resolve handles one user message. A failing corpus degrades to "no
// candidate" for that corpus; only the final reply decision depends on
// what remains. The interaction log write is dispatched asynchronously
// and never affects the returned reply.
func (s *ChatService) Resolve(ctx context.Context, rawQuery, userID string) (*dto.ChatResponse, error) {
	normalized := nlp.Normalize(rawQuery)
	if normalized == "" {
		resp := &dto.ChatResponse{
			Reply:  emptyInputReply,
			Intent: intentEmptyInput,
			Source: string(models.SourceFallback),
		}
		s.logInteraction(rawQuery, userID, resp)
		return resp, nil
	}

	if resp := s.cachedReply(ctx, normalized); resp != nil {
		s.logInteraction(rawQuery, userID, resp)
		return resp, nil
	}

	var (
		bestFaq     *models.Faq
		faqScore    float64
		bestScheme  *models.Scheme
		schemeScore float64
	)

	// The two corpus lookups are independent; run them concurrently
	// and join before comparing scores.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		faq, score, err := s.matcher.BestFaq(ctx, normalized)
		if err != nil {
			s.logger.Warn("FAQ corpus lookup failed", zap.Error(err))
			return
		}
		bestFaq, faqScore = faq, score
	}()
	go func() {
		defer wg.Done()
		scheme, score, err := s.matcher.BestScheme(ctx, normalized)
		if err != nil {
			s.logger.Warn("Scheme corpus lookup failed", zap.Error(err))
			return
		}
		bestScheme, schemeScore = scheme, score
	}()
	wg.Wait()

	resp := s.selectReply(bestFaq, faqScore, bestScheme, schemeScore)
	s.cacheReply(ctx, normalized, resp)
	s.logInteraction(rawQuery, userID, resp)

	return resp, nil
}

// selectReply applies the priority rule: an FAQ candidate with a
// positive score wins whenever its score is greater than or equal to
// the scheme candidate's. FAQ winning ties is deliberate.
func (s *ChatService) selectReply(bestFaq *models.Faq, faqScore float64, bestScheme *models.Scheme, schemeScore float64) *dto.ChatResponse {
	switch {
	case bestFaq != nil && faqScore > 0 && faqScore >= schemeScore:
		return &dto.ChatResponse{
			Reply:  bestFaq.Answer,
			Intent: "faq_" + firstOr(bestFaq.Keywords, bestFaq.ID.String()),
			Source: string(models.SourceFaq),
			Result: bestFaq,
		}
	case bestScheme != nil && schemeScore > 0:
		return &dto.ChatResponse{
			Reply:  formatSchemeReply(bestScheme),
			Intent: "scheme_" + firstOr(bestScheme.Keywords, bestScheme.ID.String()),
			Source: string(models.SourceScheme),
			Result: bestScheme,
		}
	default:
		return &dto.ChatResponse{
			Reply:  fallbackReply,
			Intent: intentFallbackUnknown,
			Source: string(models.SourceFallback),
		}
	}
}

// logInteraction appends the interaction record on its own goroutine.
// The attempt is tracked by the WaitGroup so Close can drain pending
// writes; a failed attempt is a warning, never an error for the turn.
func (s *ChatService) logInteraction(rawQuery, userID string, resp *dto.ChatResponse) {
	record := &models.Interaction{
		ID:        uuid.New(),
		UserID:    strings.TrimSpace(userID),
		Query:     sanitizeUTF8(strings.TrimSpace(rawQuery)),
		Response:  sanitizeUTF8(resp.Reply),
		Intent:    strings.ToLower(strings.TrimSpace(resp.Intent)),
		Source:    models.Source(resp.Source),
		Timestamp: time.Now(),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// Detached from the request context: the reply has already
		// been sent by the time this write lands.
		ctx, cancel := context.WithTimeout(context.Background(), logTimeout)
		defer cancel()

		if err := s.interactions.Create(ctx, record); err != nil {
			s.logger.Warn("Interaction log write failed",
				zap.String("intent", record.Intent),
				zap.Error(err),
			)
		}
	}()
}

func (s *ChatService) cachedReply(ctx context.Context, normalized string) *dto.ChatResponse {
	var resp dto.ChatResponse
	err := s.replyCache.Get(ctx, replyCacheKey(normalized), &resp)
	if errors.Is(err, cache.ErrMiss) {
		return nil
	}
	if err != nil {
		s.logger.Warn("Reply cache read failed", zap.Error(err))
		return nil
	}
	return &resp
}

func (s *ChatService) cacheReply(ctx context.Context, normalized string, resp *dto.ChatResponse) {
	if err := s.replyCache.Set(ctx, replyCacheKey(normalized), resp); err != nil {
		s.logger.Warn("Reply cache write failed", zap.Error(err))
	}
}

// Close waits for in-flight interaction log writes to finish.
func (s *ChatService) Close() {
	s.wg.Wait()
}

func replyCacheKey(normalized string) string {
	return "chat:reply:" + normalized
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
