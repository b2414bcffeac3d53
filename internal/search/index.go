// Package search provides the in-memory fuzzy corpus index. The index
// is an explicit handle owned by the caller: it is built by Rebuild,
// queried under a read lock, and rebuilt whenever an admin mutates the
// corpus. Nothing in this package keeps ambient state.
package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"janseva/internal/models"
	"janseva/internal/nlp"

	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"
)

type FaqSource interface {
	ListAll(ctx context.Context) ([]*models.Faq, error)
}

type SchemeSource interface {
	ListAll(ctx context.Context) ([]*models.Scheme, error)
}

type Index struct {
	faqSource    FaqSource
	schemeSource SchemeSource
	logger       *zap.Logger

	mu         sync.RWMutex
	faqs       []*models.Faq
	faqKeys    []string
	schemes    []*models.Scheme
	schemeKeys []string
}

func NewIndex(faqSource FaqSource, schemeSource SchemeSource, logger *zap.Logger) *Index {
	return &Index{
		faqSource:    faqSource,
		schemeSource: schemeSource,
		logger:       logger,
	}
}

// Rebuild reloads both corpora and swaps the searchable snapshots in
// one critical section. Queries running concurrently see either the
// old or the new snapshot, never a mix.
func (ix *Index) Rebuild(ctx context.Context) error {
	faqs, err := ix.faqSource.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load FAQ corpus: %w", err)
	}

	schemes, err := ix.schemeSource.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load scheme corpus: %w", err)
	}

	faqKeys := make([]string, len(faqs))
	for i, f := range faqs {
		faqKeys[i] = faqKey(f)
	}

	schemeKeys := make([]string, len(schemes))
	for i, s := range schemes {
		schemeKeys[i] = schemeKey(s)
	}

	ix.mu.Lock()
	ix.faqs = faqs
	ix.faqKeys = faqKeys
	ix.schemes = schemes
	ix.schemeKeys = schemeKeys
	ix.mu.Unlock()

	ix.logger.Info("Search index rebuilt",
		zap.Int("faqs", len(faqs)),
		zap.Int("schemes", len(schemes)),
	)

	return nil
}

// BestFaq returns the closest FAQ for the normalized query, with a
// positive score, or (nil, 0) when nothing matches.
func (ix *Index) BestFaq(query string) (*models.Faq, float64) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	i, score := bestMatch(query, ix.faqKeys)
	if i < 0 {
		return nil, 0
	}
	return ix.faqs[i], score
}

// BestScheme returns the closest scheme for the normalized query, with
// a positive score, or (nil, 0) when nothing matches.
func (ix *Index) BestScheme(query string) (*models.Scheme, float64) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	i, score := bestMatch(query, ix.schemeKeys)
	if i < 0 {
		return nil, 0
	}
	return ix.schemes[i], score
}

func bestMatch(query string, keys []string) (int, float64) {
	if query == "" || len(keys) == 0 {
		return -1, 0
	}

	matches := fuzzy.Find(query, keys)
	if len(matches) == 0 {
		return -1, 0
	}

	// Matches come back best-first. Scores can be non-positive for
	// weak matches; a matched entry still counts, so floor at 1.
	best := matches[0]
	score := float64(best.Score)
	if score < 1 {
		score = 1
	}
	return best.Index, score
}

func faqKey(f *models.Faq) string {
	parts := append([]string{f.Question}, f.Keywords...)
	parts = append(parts, f.Tags...)
	return nlp.Normalize(strings.Join(parts, " "))
}

func schemeKey(s *models.Scheme) string {
	parts := append([]string{s.SchemeName, s.ShortDescription}, s.Keywords...)
	return nlp.Normalize(strings.Join(parts, " "))
}
