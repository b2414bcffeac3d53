package service_test

import (
	"context"
	"errors"
	"testing"

	"janseva/internal/models"
	"janseva/internal/repository"
	"janseva/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeFaqLister struct {
	faqs []*models.Faq
	err  error
}

func (l *fakeFaqLister) ListAll(_ context.Context) ([]*models.Faq, error) {
	return l.faqs, l.err
}

type fakeSchemeLister struct {
	schemes []*models.Scheme
	err     error
}

func (l *fakeSchemeLister) ListAll(_ context.Context) ([]*models.Scheme, error) {
	return l.schemes, l.err
}

func TestKeywordMatcherBestFaq(t *testing.T) {
	first := &models.Faq{ID: uuid.New(), Keywords: []string{"aadhaar status"}}
	second := &models.Faq{ID: uuid.New(), Keywords: []string{"pan card"}, Tags: []string{"tax"}}
	lister := &fakeFaqLister{faqs: []*models.Faq{first, second}}
	matcher := service.NewKeywordMatcher(lister, &fakeSchemeLister{})

	tests := []struct {
		name     string
		query    string
		expected *models.Faq
		score    float64
	}{
		{
			name:     "keyword contained in query",
			query:    "check my aadhaar status please",
			expected: first,
			score:    1,
		},
		{
			name:     "tag also matches",
			query:    "question about tax",
			expected: second,
			score:    1,
		},
		{
			name:     "first match in corpus order wins",
			query:    "aadhaar status and pan card",
			expected: first,
			score:    1,
		},
		{
			name:     "no keyword contained",
			query:    "weather today",
			expected: nil,
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			faq, score, err := matcher.BestFaq(context.Background(), tt.query)
			require.NoError(t, err)
			require.Equal(t, tt.expected, faq)
			require.Equal(t, tt.score, score)
		})
	}
}

func TestKeywordMatcherBestScheme(t *testing.T) {
	scheme := &models.Scheme{ID: uuid.New(), Keywords: []string{"pm kisan"}}
	matcher := service.NewKeywordMatcher(&fakeFaqLister{}, &fakeSchemeLister{schemes: []*models.Scheme{scheme}})

	got, score, err := matcher.BestScheme(context.Background(), "pm kisan installment")
	require.NoError(t, err)
	require.Equal(t, scheme, got)
	require.Equal(t, float64(1), score)

	got, score, err = matcher.BestScheme(context.Background(), "something else")
	require.NoError(t, err)
	require.Nil(t, got)
	require.Zero(t, score)
}

func TestKeywordMatcherPropagatesErrors(t *testing.T) {
	listErr := errors.New("db down")
	matcher := service.NewKeywordMatcher(&fakeFaqLister{err: listErr}, &fakeSchemeLister{err: listErr})

	_, _, err := matcher.BestFaq(context.Background(), "anything")
	require.ErrorIs(t, err, listErr)

	_, _, err = matcher.BestScheme(context.Background(), "anything")
	require.ErrorIs(t, err, listErr)
}

type fakeFaqSearcher struct {
	results []*models.Faq
	err     error
	gotQ    string
}

func (s *fakeFaqSearcher) SearchRanked(_ context.Context, queryText string, _ uint64) ([]*models.Faq, error) {
	s.gotQ = queryText
	return s.results, s.err
}

type fakeSchemeSearcher struct {
	results []*models.Scheme
	err     error
}

func (s *fakeSchemeSearcher) SearchRanked(_ context.Context, _ string, _ repository.SchemeFilter) ([]*models.Scheme, error) {
	return s.results, s.err
}

func TestFulltextMatcherBestFaq(t *testing.T) {
	t.Run("top result with its rank", func(t *testing.T) {
		best := &models.Faq{ID: uuid.New(), Score: 0.42}
		searcher := &fakeFaqSearcher{results: []*models.Faq{best, {ID: uuid.New(), Score: 0.1}}}
		matcher := service.NewFulltextMatcher(searcher, &fakeSchemeSearcher{}, 5)

		faq, score, err := matcher.BestFaq(context.Background(), "aadhaar update")
		require.NoError(t, err)
		require.Equal(t, best, faq)
		require.Equal(t, 0.42, score)
		require.Equal(t, "aadhaar update", searcher.gotQ)
	})

	t.Run("zero rank still counts as a match", func(t *testing.T) {
		best := &models.Faq{ID: uuid.New(), Score: 0}
		matcher := service.NewFulltextMatcher(&fakeFaqSearcher{results: []*models.Faq{best}}, &fakeSchemeSearcher{}, 5)

		_, score, err := matcher.BestFaq(context.Background(), "q")
		require.NoError(t, err)
		require.Equal(t, float64(1), score)
	})

	t.Run("no results", func(t *testing.T) {
		matcher := service.NewFulltextMatcher(&fakeFaqSearcher{}, &fakeSchemeSearcher{}, 5)

		faq, score, err := matcher.BestFaq(context.Background(), "q")
		require.NoError(t, err)
		require.Nil(t, faq)
		require.Zero(t, score)
	})
}

func TestFulltextMatcherBestScheme(t *testing.T) {
	best := &models.Scheme{ID: uuid.New(), Score: 0.9}
	matcher := service.NewFulltextMatcher(&fakeFaqSearcher{}, &fakeSchemeSearcher{results: []*models.Scheme{best}}, 5)

	scheme, score, err := matcher.BestScheme(context.Background(), "pm kisan")
	require.NoError(t, err)
	require.Equal(t, best, scheme)
	require.Equal(t, 0.9, score)
}
