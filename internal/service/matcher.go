package service

import (
	"context"
	"strings"

	"janseva/internal/models"
	"janseva/internal/repository"
	"janseva/internal/search"
)

// Matcher scores a normalized query against both corpora and returns
// the best candidate per corpus. A nil entry or a zero score means
// "no match". All strategies are interchangeable behind this interface
// so the selector never knows which one is deployed.
type Matcher interface {
	BestFaq(ctx context.Context, normalizedQuery string) (*models.Faq, float64, error)
	BestScheme(ctx context.Context, normalizedQuery string) (*models.Scheme, float64, error)
}

// Matching strategy names accepted by MATCH_STRATEGY.
const (
	StrategyFulltext = "fulltext"
	StrategyKeyword  = "keyword"
	StrategyFuzzy    = "fuzzy"
)

type faqLister interface {
	ListAll(ctx context.Context) ([]*models.Faq, error)
}

type schemeLister interface {
	ListAll(ctx context.Context) ([]*models.Scheme, error)
}

// KeywordMatcher is the rule-based strategy: it scans the corpus in
// iteration order and picks the first entry one of whose keywords or
// tags appears verbatim inside the normalized input. The match is
// boolean, reported as score 1.
type KeywordMatcher struct {
	faqs    faqLister
	schemes schemeLister
}

func NewKeywordMatcher(faqs faqLister, schemes schemeLister) *KeywordMatcher {
	return &KeywordMatcher{
		faqs:    faqs,
		schemes: schemes,
	}
}

func (m *KeywordMatcher) BestFaq(ctx context.Context, normalizedQuery string) (*models.Faq, float64, error) {
	faqs, err := m.faqs.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	for _, faq := range faqs {
		if containsAny(normalizedQuery, faq.Keywords) || containsAny(normalizedQuery, faq.Tags) {
			return faq, 1, nil
		}
	}
	return nil, 0, nil
}

func (m *KeywordMatcher) BestScheme(ctx context.Context, normalizedQuery string) (*models.Scheme, float64, error) {
	schemes, err := m.schemes.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	for _, scheme := range schemes {
		if containsAny(normalizedQuery, scheme.Keywords) {
			return scheme, 1, nil
		}
	}
	return nil, 0, nil
}

func containsAny(input string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

type faqSearcher interface {
	SearchRanked(ctx context.Context, queryText string, limit uint64) ([]*models.Faq, error)
}

type schemeSearcher interface {
	SearchRanked(ctx context.Context, queryText string, filter repository.SchemeFilter) ([]*models.Scheme, error)
}

// FulltextMatcher is the indexed-search strategy: each corpus query is
// ranked by the store's full-text relevance function and the top entry
// per corpus participates in selection.
type FulltextMatcher struct {
	faqs    faqSearcher
	schemes schemeSearcher
	topK    int
}

func NewFulltextMatcher(faqs faqSearcher, schemes schemeSearcher, topK int) *FulltextMatcher {
	if topK <= 0 {
		topK = 5
	}
	return &FulltextMatcher{
		faqs:    faqs,
		schemes: schemes,
		topK:    topK,
	}
}

func (m *FulltextMatcher) BestFaq(ctx context.Context, normalizedQuery string) (*models.Faq, float64, error) {
	results, err := m.faqs.SearchRanked(ctx, normalizedQuery, uint64(m.topK))
	if err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return nil, 0, nil
	}

	best := results[0]
	return best, positiveScore(best.Score), nil
}

func (m *FulltextMatcher) BestScheme(ctx context.Context, normalizedQuery string) (*models.Scheme, float64, error) {
	results, err := m.schemes.SearchRanked(ctx, normalizedQuery, repository.SchemeFilter{Limit: uint64(m.topK)})
	if err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return nil, 0, nil
	}

	best := results[0]
	return best, positiveScore(best.Score), nil
}

// positiveScore guards the "matched means positive" contract: a ranked
// hit with a zero rank still counts as a match.
func positiveScore(score float64) float64 {
	if score <= 0 {
		return 1
	}
	return score
}

// FuzzyMatcher adapts the in-memory fuzzy index to the Matcher
// interface. The index is queried as-is; rebuilds happen out of band
// after corpus mutations.
type FuzzyMatcher struct {
	index *search.Index
}

func NewFuzzyMatcher(index *search.Index) *FuzzyMatcher {
	return &FuzzyMatcher{index: index}
}

func (m *FuzzyMatcher) BestFaq(_ context.Context, normalizedQuery string) (*models.Faq, float64, error) {
	faq, score := m.index.BestFaq(normalizedQuery)
	return faq, score, nil
}

func (m *FuzzyMatcher) BestScheme(_ context.Context, normalizedQuery string) (*models.Scheme, float64, error) {
	scheme, score := m.index.BestScheme(normalizedQuery)
	return scheme, score, nil
}
