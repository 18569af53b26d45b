package handler

import (
	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler serves the chat resource.
type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// GetThread returns the conversation with another user and marks its
// incoming messages as read.
// @Summary Get a chat thread
// @Tags chat
// @Security ApiKeyAuth
// @Produce json
// @Param other_user_id query string true "Conversation partner id"
// @Success 200 {object} dto.ThreadResponse
// @Failure 400 {object} middleware.ErrorResponse "Missing other_user_id"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /chat [get]
func (h *ChatHandler) GetThread(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	otherUserID := c.Query("other_user_id")
	if otherUserID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("other_user_id")}
	}

	resp, err := h.chatService.GetThread(c.Context(), userID, otherUserID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Post dispatches the chat POST body on its action field.
// @Summary Send a message or count unread ones
// @Tags chat
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.UnreadCountResponse "Unread count"
// @Success 201 {object} dto.SendMessageResponse "Message sent"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /chat [post]
func (h *ChatHandler) Post(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	switch req.Action {
	case "send":
		resp, err := h.chatService.SendMessage(c.Context(), userID, &req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	case "unread_count":
		resp, err := h.chatService.UnreadCount(c.Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	default:
		return domain.NewInvalidInputError("unknown action")
	}
}
