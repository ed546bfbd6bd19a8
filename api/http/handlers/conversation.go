package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/botivate/troubleshoot/api/http/presenter"
	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/security/jwt"
	"github.com/botivate/troubleshoot/pkg/support"
)

type ConversationHandler struct {
	uc     conversation.UseCase
	logger zerolog.Logger
}

func NewConversationHandler(uc conversation.UseCase, logger zerolog.Logger) *ConversationHandler {
	return &ConversationHandler{uc: uc, logger: logger}
}

type startConversationResponse struct {
	conversation.Conversation
	Greeting string `json:"greeting"`
}

type askRequest struct {
	Question string `json:"question"`
}

// Start opens a new conversation for the caller.
// @Summary Start a conversation
// @Tags    conversations
// @Produce json
// @Security BearerAuth
// @Success 201 {object} startConversationResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /conversations [post]
func (h *ConversationHandler) Start(c *fiber.Ctx) error {
	conv, err := h.uc.Start(c.Context(), jwt.OwnerID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, startConversationResponse{Conversation: conv, Greeting: support.Greeting})
}

// Ask sends the next question of a conversation.
// @Summary Ask a question
// @Tags    conversations
// @Accept  json
// @Produce json
// @Param   id path string true "Conversation ID (UUID)"
// @Param   input body askRequest true "Question"
// @Security BearerAuth
// @Success 200 {object} conversation.Reply
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /conversations/{id}/messages [post]
func (h *ConversationHandler) Ask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	reply, err := h.uc.Ask(c.Context(), jwt.OwnerID(c), id, req.Question)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, reply)
}

// Get returns a conversation with its history.
// @Summary Get a conversation
// @Tags    conversations
// @Produce json
// @Param   id path string true "Conversation ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} conversation.Conversation
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /conversations/{id} [get]
func (h *ConversationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	conv, err := h.uc.Get(c.Context(), jwt.OwnerID(c), id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, conv)
}

// List returns the caller's conversations, most recently updated first.
// @Summary List conversations
// @Tags    conversations
// @Produce json
// @Param   limit query int false "Page size (max 200)"
// @Param   offset query int false "Offset"
// @Security BearerAuth
// @Success 200 {array} conversation.Conversation
// @Router  /conversations [get]
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), jwt.OwnerID(c), limit, offset)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Delete removes a conversation.
// @Summary Delete a conversation
// @Tags    conversations
// @Param   id path string true "Conversation ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /conversations/{id} [delete]
func (h *ConversationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Context(), jwt.OwnerID(c), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ConversationHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, conversation.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "conversation not found")
	case errors.Is(err, conversation.ErrEmptyQuestion):
		return presenter.Error(c, http.StatusBadRequest, "question is required")
	}
	h.logger.Error().Err(err).Str("path", c.Path()).Msg("conversation request failed")
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}
