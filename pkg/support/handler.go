package support

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/botivate/troubleshoot/pkg/llm"
)

// Handler answers one troubleshooting question per call. It holds no
// per-conversation state; everything it needs arrives in State.
type Handler struct {
	model  llm.ChatModel
	logger zerolog.Logger
}

func NewHandler(model llm.ChatModel, logger zerolog.Logger) *Handler {
	return &Handler{
		model:  model,
		logger: logger.With().Str("component", "troubleshoot").Logger(),
	}
}

// Messages assembles the prompt context: persona, prior turns in order, then
// the new question.
func Messages(question string, history []Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: Prompt})
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: question})
	return msgs
}

// Handle runs a single turn and returns the updated state. A failed completion
// yields FallbackAnswer and the history exactly as it was passed in; the
// failure is only logged.
//
// The returned history never shares a backing array with in.History, so the
// caller's slice is left untouched either way.
func (h *Handler) Handle(ctx context.Context, in State) State {
	h.logger.Info().Int("history_turns", len(in.History)).Msg("troubleshoot turn started")

	res := llm.Invoke(ctx, h.model, Messages(in.Question, in.History))
	if !res.OK() {
		h.logger.Error().Err(res.Failure).Msg("completion failed; returning fallback answer")
		return State{
			Question: in.Question,
			History:  in.History,
			Answer:   FallbackAnswer,
		}
	}

	h.logger.Info().Str("answer", res.Text).Msg("troubleshoot answer generated")

	history := make([]Turn, 0, len(in.History)+2)
	history = append(history, in.History...)
	history = append(history,
		Turn{Role: RoleHuman, Content: in.Question},
		Turn{Role: RoleAssistant, Content: res.Text},
	)
	return State{
		Question: in.Question,
		History:  history,
		Answer:   res.Text,
	}
}

// Respond is Handle for callers that keep question and history separately.
func (h *Handler) Respond(ctx context.Context, question string, history []Turn) (string, []Turn) {
	out := h.Handle(ctx, State{Question: question, History: history})
	return out.Answer, out.History
}
