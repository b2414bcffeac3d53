package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"janseva/internal/models"
	"janseva/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMatcher struct {
	faq         *models.Faq
	faqScore    float64
	faqErr      error
	scheme      *models.Scheme
	schemeScore float64
	schemeErr   error
}

func (m *fakeMatcher) BestFaq(_ context.Context, _ string) (*models.Faq, float64, error) {
	return m.faq, m.faqScore, m.faqErr
}

func (m *fakeMatcher) BestScheme(_ context.Context, _ string) (*models.Scheme, float64, error) {
	return m.scheme, m.schemeScore, m.schemeErr
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []*models.Interaction
	err     error
}

func (r *fakeRecorder) Create(_ context.Context, in *models.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, in)
	return nil
}

func (r *fakeRecorder) all() []*models.Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Interaction(nil), r.records...)
}

func newFaq(answer string, keywords ...string) *models.Faq {
	return &models.Faq{
		ID:       uuid.New(),
		Question: "q",
		Answer:   answer,
		Keywords: keywords,
	}
}

func TestResolveEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "whitespace only", input: "   \t  "},
		{name: "punctuation only", input: "?!?..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			svc := service.NewChatService(&fakeMatcher{}, recorder, nil, zap.NewNop())

			resp, err := svc.Resolve(context.Background(), tt.input, "user-1")
			require.NoError(t, err)
			require.Equal(t, "empty_input", resp.Intent)
			require.Equal(t, "fallback", resp.Source)
			require.NotEmpty(t, resp.Reply)
			require.Nil(t, resp.Result)

			svc.Close()
			records := recorder.all()
			require.Len(t, records, 1)
			require.Equal(t, "empty_input", records[0].Intent)
			require.Equal(t, models.SourceFallback, records[0].Source)
		})
	}
}

func TestResolveFaqWinsTie(t *testing.T) {
	faq := newFaq("Visit uidai.gov.in to check your status.", "aadhaar status")
	scheme := &models.Scheme{
		ID:               uuid.New(),
		SchemeName:       "Some Scheme",
		ShortDescription: "A scheme.",
		Keywords:         []string{"scheme"},
	}

	matcher := &fakeMatcher{
		faq: faq, faqScore: 2,
		scheme: scheme, schemeScore: 2,
	}
	recorder := &fakeRecorder{}
	svc := service.NewChatService(matcher, recorder, nil, zap.NewNop())

	resp, err := svc.Resolve(context.Background(), "aadhaar status", "user-1")
	require.NoError(t, err)
	require.Equal(t, "faq", resp.Source)
	require.Equal(t, faq.Answer, resp.Reply)
	require.Equal(t, "faq_aadhaar status", resp.Intent)
	require.Equal(t, faq, resp.Result)

	svc.Close()
}

func TestResolveSchemeWinsWhenHigher(t *testing.T) {
	faq := newFaq("some answer", "misc")
	scheme := &models.Scheme{
		ID:                uuid.New(),
		SchemeName:        "PM-Kisan Samman Nidhi",
		ShortDescription:  "Income support for farmers.",
		Eligibility:       "Landholding farmer families.",
		Benefits:          "Rs. 6,000 per year.",
		DocumentsRequired: []string{"Aadhaar card", "Land records"},
		HowToApply:        "Register at pmkisan.gov.in.",
		OfficialLink:      "https://pmkisan.gov.in",
		Keywords:          []string{"pm kisan"},
	}

	matcher := &fakeMatcher{
		faq: faq, faqScore: 1,
		scheme: scheme, schemeScore: 3,
	}
	recorder := &fakeRecorder{}
	svc := service.NewChatService(matcher, recorder, nil, zap.NewNop())

	resp, err := svc.Resolve(context.Background(), "pm kisan", "user-1")
	require.NoError(t, err)
	require.Equal(t, "scheme", resp.Source)
	require.Equal(t, "scheme_pm kisan", resp.Intent)

	expected := "Income support for farmers.\n" +
		"Eligibility: Landholding farmer families.\n" +
		"Benefits: Rs. 6,000 per year.\n" +
		"Documents Required:\n- Aadhaar card\n- Land records\n" +
		"How to apply: Register at pmkisan.gov.in.\n" +
		"Official: https://pmkisan.gov.in"
	require.Equal(t, expected, resp.Reply)

	svc.Close()
}

func TestResolveSchemeReplySkipsEmptyFields(t *testing.T) {
	scheme := &models.Scheme{
		ID:               uuid.New(),
		SchemeName:       "Minimal Scheme",
		ShortDescription: "Just a description.",
		Keywords:         []string{"minimal"},
	}

	matcher := &fakeMatcher{scheme: scheme, schemeScore: 1}
	svc := service.NewChatService(matcher, &fakeRecorder{}, nil, zap.NewNop())

	resp, err := svc.Resolve(context.Background(), "minimal", "user-1")
	require.NoError(t, err)
	require.Equal(t, "Just a description.", resp.Reply)

	svc.Close()
}

func TestResolveFallbackWhenNoMatch(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := service.NewChatService(&fakeMatcher{}, recorder, nil, zap.NewNop())

	resp, err := svc.Resolve(context.Background(), "quantum physics", "user-1")
	require.NoError(t, err)
	require.Equal(t, "fallback", resp.Source)
	require.Equal(t, "fallback_unknown", resp.Intent)
	require.Nil(t, resp.Result)

	svc.Close()
	records := recorder.all()
	require.Len(t, records, 1)
	require.Equal(t, "fallback_unknown", records[0].Intent)
}

func TestResolveToleratesCorpusFailure(t *testing.T) {
	scheme := &models.Scheme{
		ID:               uuid.New(),
		SchemeName:       "Jan Dhan",
		ShortDescription: "Zero-balance accounts.",
		Keywords:         []string{"jan dhan"},
	}

	t.Run("faq corpus fails, scheme still answers", func(t *testing.T) {
		matcher := &fakeMatcher{
			faqErr: errors.New("connection refused"),
			scheme: scheme, schemeScore: 2,
		}
		svc := service.NewChatService(matcher, &fakeRecorder{}, nil, zap.NewNop())

		resp, err := svc.Resolve(context.Background(), "jan dhan", "user-1")
		require.NoError(t, err)
		require.Equal(t, "scheme", resp.Source)

		svc.Close()
	})

	t.Run("both corpora fail, fallback", func(t *testing.T) {
		matcher := &fakeMatcher{
			faqErr:    errors.New("connection refused"),
			schemeErr: errors.New("connection refused"),
		}
		svc := service.NewChatService(matcher, &fakeRecorder{}, nil, zap.NewNop())

		resp, err := svc.Resolve(context.Background(), "jan dhan", "user-1")
		require.NoError(t, err)
		require.Equal(t, "fallback", resp.Source)
		require.Equal(t, "fallback_unknown", resp.Intent)

		svc.Close()
	})
}

func TestResolveLogsInteraction(t *testing.T) {
	faq := newFaq("the answer", "PAN Card")
	matcher := &fakeMatcher{faq: faq, faqScore: 1}
	recorder := &fakeRecorder{}
	svc := service.NewChatService(matcher, recorder, nil, zap.NewNop())

	_, err := svc.Resolve(context.Background(), "  PAN card?  ", "citizen-7")
	require.NoError(t, err)

	svc.Close()
	records := recorder.all()
	require.Len(t, records, 1)
	require.Equal(t, "citizen-7", records[0].UserID)
	require.Equal(t, "PAN card?", records[0].Query)
	require.Equal(t, "the answer", records[0].Response)
	require.Equal(t, "faq_pan card", records[0].Intent)
	require.Equal(t, models.SourceFaq, records[0].Source)
	require.False(t, records[0].Timestamp.IsZero())
}

func TestResolveSurvivesLogFailure(t *testing.T) {
	faq := newFaq("the answer", "pan")
	matcher := &fakeMatcher{faq: faq, faqScore: 1}
	recorder := &fakeRecorder{err: errors.New("insert failed")}
	svc := service.NewChatService(matcher, recorder, nil, zap.NewNop())

	resp, err := svc.Resolve(context.Background(), "pan", "user-1")
	require.NoError(t, err)
	require.Equal(t, "faq", resp.Source)

	svc.Close()
}
