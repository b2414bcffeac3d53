package service

import (
	"context"
	"strings"
	"sync"

	"janseva/internal/dto"
	"janseva/internal/nlp"

	"github.com/navossoc/bayesian"
	"go.uber.org/zap"
)

const (
	classFaq    bayesian.Class = "faq"
	classScheme bayesian.Class = "scheme"

	intentUnknown = "unknown"
)

// IntentService is an advisory naive-Bayes classifier over the two
// corpora. It estimates whether free text reads like an FAQ question
// or a scheme inquiry; it is never consulted on the resolve path.
type IntentService struct {
	faqs    faqLister
	schemes schemeLister
	logger  *zap.Logger

	mu         sync.RWMutex
	classifier *bayesian.Classifier
}

func NewIntentService(faqs faqLister, schemes schemeLister, logger *zap.Logger) *IntentService {
	return &IntentService{
		faqs:    faqs,
		schemes: schemes,
		logger:  logger,
	}
}

// Rebuild retrains the classifier from the current corpora. With an
// empty corpus on either side there is nothing to separate, so the
// classifier is dropped and Classify reports unknown.
func (s *IntentService) Rebuild(ctx context.Context) error {
	faqs, err := s.faqs.ListAll(ctx)
	if err != nil {
		return err
	}

	schemes, err := s.schemes.ListAll(ctx)
	if err != nil {
		return err
	}

	classifier := bayesian.NewClassifier(classFaq, classScheme)
	var faqDocs, schemeDocs int

	for _, faq := range faqs {
		text := faq.Question + " " + strings.Join(faq.Keywords, " ") + " " + strings.Join(faq.Tags, " ")
		if tokens := nlp.Preprocess(text, 2); len(tokens) > 0 {
			classifier.Learn(tokens, classFaq)
			faqDocs++
		}
	}
	for _, scheme := range schemes {
		text := scheme.SchemeName + " " + scheme.ShortDescription + " " + strings.Join(scheme.Keywords, " ")
		if tokens := nlp.Preprocess(text, 2); len(tokens) > 0 {
			classifier.Learn(tokens, classScheme)
			schemeDocs++
		}
	}

	s.mu.Lock()
	if faqDocs > 0 && schemeDocs > 0 {
		s.classifier = classifier
	} else {
		s.classifier = nil
	}
	s.mu.Unlock()

	s.logger.Info("Intent classifier retrained",
		zap.Int("faq_docs", faqDocs),
		zap.Int("scheme_docs", schemeDocs),
	)

	return nil
}

// Classify predicts the corpus class for free text with a confidence
// in [0, 1]. Untrained classifier or empty text yields unknown.
func (s *IntentService) Classify(text string) *dto.ClassifyResponse {
	tokens := nlp.Preprocess(text, 2)

	s.mu.RLock()
	classifier := s.classifier
	s.mu.RUnlock()

	if classifier == nil || len(tokens) == 0 {
		return &dto.ClassifyResponse{Intent: intentUnknown, Confidence: 0}
	}

	scores, inx, _ := classifier.ProbScores(tokens)
	classes := []bayesian.Class{classFaq, classScheme}
	return &dto.ClassifyResponse{
		Intent:     string(classes[inx]),
		Confidence: scores[inx],
	}
}
