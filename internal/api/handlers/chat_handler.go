package handlers

import (
	"janseva/internal/dto"
	"janseva/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Message godoc
// @Summary Resolve a chatbot message
// @Description Match free text against the FAQ and scheme corpora and return the best reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 500 {object} map[string]string
// @Router /chat/message [post]
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	message := req.Message
	if message == "" {
		message = req.Query
	}

	// Empty input is not an error: the resolver answers it with the
	// empty_input fallback reply.
	userID := req.UserID
	if userID == "" {
		userID = c.IP()
	}

	resp, err := h.chatService.Resolve(c.Context(), message, userID)
	if err != nil {
		h.logger.Error("Chat resolution failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(resp)
}
