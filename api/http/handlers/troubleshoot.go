package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/botivate/troubleshoot/api/http/presenter"
	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/support"
)

// TroubleshootHandler exposes a single stateless turn: the caller owns the history.
type TroubleshootHandler struct {
	turns conversation.TurnHandler
}

func NewTroubleshootHandler(turns conversation.TurnHandler) *TroubleshootHandler {
	return &TroubleshootHandler{turns: turns}
}

type troubleshootRequest struct {
	Question string         `json:"question"`
	History  []support.Turn `json:"history"`
}

type troubleshootResponse struct {
	Answer   string           `json:"answer"`
	History  []support.Turn   `json:"history"`
	Sections support.Sections `json:"sections"`
	Fallback bool             `json:"fallback"`
}

// Answer runs one troubleshooting turn over the history sent by the client.
// @Summary Answer one troubleshooting question
// @Tags    troubleshoot
// @Accept  json
// @Produce json
// @Param   input body troubleshootRequest true "Question and prior history"
// @Success 200 {object} troubleshootResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /troubleshoot [post]
func (h *TroubleshootHandler) Answer(c *fiber.Ctx) error {
	var req troubleshootRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if strings.TrimSpace(req.Question) == "" {
		return presenter.Error(c, http.StatusBadRequest, "question is required")
	}
	for _, t := range req.History {
		if !t.Role.Valid() {
			return presenter.Error(c, http.StatusBadRequest, "history role must be human or assistant")
		}
	}
	if req.History == nil {
		req.History = []support.Turn{}
	}

	out := h.turns.Handle(c.Context(), support.State{Question: req.Question, History: req.History})
	return presenter.JSON(c, http.StatusOK, troubleshootResponse{
		Answer:   out.Answer,
		History:  out.History,
		Sections: support.ParseSections(out.Answer),
		Fallback: len(out.History) == len(req.History),
	})
}
