package service_test

import (
	"context"
	"testing"

	"janseva/internal/models"
	"janseva/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func trainedIntentService(t *testing.T) *service.IntentService {
	t.Helper()

	faqs := &fakeFaqLister{faqs: []*models.Faq{
		{ID: uuid.New(), Question: "How do I check my Aadhaar card status?", Keywords: []string{"aadhaar status"}},
		{ID: uuid.New(), Question: "How do I apply for a PAN card online?", Keywords: []string{"pan card"}},
	}}
	schemes := &fakeSchemeLister{schemes: []*models.Scheme{
		{ID: uuid.New(), SchemeName: "PM-Kisan Samman Nidhi", ShortDescription: "Income support for farmers", Keywords: []string{"pm kisan"}},
		{ID: uuid.New(), SchemeName: "Sukanya Samriddhi Yojana", ShortDescription: "Savings scheme for the girl child", Keywords: []string{"sukanya samriddhi"}},
	}}

	svc := service.NewIntentService(faqs, schemes, zap.NewNop())
	require.NoError(t, svc.Rebuild(context.Background()))
	return svc
}

func TestIntentServiceClassify(t *testing.T) {
	svc := trainedIntentService(t)

	t.Run("faq-like text", func(t *testing.T) {
		resp := svc.Classify("aadhaar card status")
		require.Equal(t, "faq", resp.Intent)
		require.Greater(t, resp.Confidence, 0.5)
	})

	t.Run("scheme-like text", func(t *testing.T) {
		resp := svc.Classify("pm kisan samman nidhi for farmers")
		require.Equal(t, "scheme", resp.Intent)
		require.Greater(t, resp.Confidence, 0.5)
	})

	t.Run("empty text", func(t *testing.T) {
		resp := svc.Classify("")
		require.Equal(t, "unknown", resp.Intent)
		require.Zero(t, resp.Confidence)
	})

	t.Run("stopwords only", func(t *testing.T) {
		resp := svc.Classify("how is the and")
		require.Equal(t, "unknown", resp.Intent)
	})
}

func TestIntentServiceUntrained(t *testing.T) {
	svc := service.NewIntentService(&fakeFaqLister{}, &fakeSchemeLister{}, zap.NewNop())

	resp := svc.Classify("aadhaar card")
	require.Equal(t, "unknown", resp.Intent)
	require.Zero(t, resp.Confidence)
}

func TestIntentServiceRebuildDropsOnEmptyCorpus(t *testing.T) {
	faqs := &fakeFaqLister{faqs: []*models.Faq{
		{ID: uuid.New(), Question: "How do I check my Aadhaar card status?"},
	}}

	// Only one class has documents; the classifier must not train.
	svc := service.NewIntentService(faqs, &fakeSchemeLister{}, zap.NewNop())
	require.NoError(t, svc.Rebuild(context.Background()))

	resp := svc.Classify("aadhaar card status")
	require.Equal(t, "unknown", resp.Intent)
}
