package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"janseva/internal/api/handlers"
	"janseva/internal/dto"
	"janseva/internal/models"
	"janseva/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMatcher struct {
	faq      *models.Faq
	faqScore float64
}

func (m *stubMatcher) BestFaq(_ context.Context, _ string) (*models.Faq, float64, error) {
	return m.faq, m.faqScore, nil
}

func (m *stubMatcher) BestScheme(_ context.Context, _ string) (*models.Scheme, float64, error) {
	return nil, 0, nil
}

type stubRecorder struct{}

func (stubRecorder) Create(_ context.Context, _ *models.Interaction) error { return nil }

func newChatApp(matcher service.Matcher) (*fiber.App, *service.ChatService) {
	chatService := service.NewChatService(matcher, stubRecorder{}, nil, zap.NewNop())
	handler := handlers.NewChatHandler(chatService, zap.NewNop())

	app := fiber.New()
	app.Post("/chat/message", handler.Message)
	return app, chatService
}

func postMessage(t *testing.T, app *fiber.App, body interface{}) *dto.ChatResponse {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/chat/message", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var resp dto.ChatResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	return &resp
}

func TestChatMessageEndpoint(t *testing.T) {
	faq := &models.Faq{
		ID:       uuid.New(),
		Question: "How do I check my Aadhaar status?",
		Answer:   "Visit uidai.gov.in and use Check Aadhaar Status.",
		Keywords: []string{"aadhaar status"},
	}
	app, chatService := newChatApp(&stubMatcher{faq: faq, faqScore: 2})
	defer chatService.Close()

	resp := postMessage(t, app, dto.ChatRequest{Message: "aadhaar status", UserID: "u-1"})
	require.Equal(t, "faq", resp.Source)
	require.Equal(t, faq.Answer, resp.Reply)
	require.Equal(t, "faq_aadhaar status", resp.Intent)
}

func TestChatMessageQueryAlias(t *testing.T) {
	faq := &models.Faq{ID: uuid.New(), Answer: "the answer", Keywords: []string{"pan"}}
	app, chatService := newChatApp(&stubMatcher{faq: faq, faqScore: 1})
	defer chatService.Close()

	resp := postMessage(t, app, dto.ChatRequest{Query: "pan card"})
	require.Equal(t, "faq", resp.Source)
}

func TestChatMessageEmptyInputIsNotAnError(t *testing.T) {
	app, chatService := newChatApp(&stubMatcher{})
	defer chatService.Close()

	resp := postMessage(t, app, dto.ChatRequest{Message: "   "})
	require.Equal(t, "fallback", resp.Source)
	require.Equal(t, "empty_input", resp.Intent)
}

func TestChatMessageInvalidBody(t *testing.T) {
	app, chatService := newChatApp(&stubMatcher{})
	defer chatService.Close()

	req := httptest.NewRequest("POST", "/chat/message", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
