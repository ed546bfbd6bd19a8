package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnavailable is returned when a provider cannot be called at all (e.g. no credential).
	ErrUnavailable = errors.New("llm unavailable")
	// ErrEmptyResponse is returned when the provider answered without any text payload.
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// Role tags a message for the completion API.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry of a prompt context.
type Message struct {
	Role    Role
	Content string
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// CompletionFailure is the single failure class of a completion call: network,
// auth, provider-side and malformed-response errors all end up here.
type CompletionFailure struct {
	Cause error
}

func (f *CompletionFailure) Error() string {
	if f == nil || f.Cause == nil {
		return "completion failed"
	}
	return "completion failed: " + f.Cause.Error()
}

func (f *CompletionFailure) Unwrap() error { return f.Cause }

// Result is the outcome of exactly one completion attempt.
type Result struct {
	Text    string
	Failure *CompletionFailure
}

// OK reports whether the call produced a text payload.
func (r Result) OK() bool { return r.Failure == nil }

// Invoke calls model once and folds every way the call can go wrong into a
// Result failure. It never retries and never panics.
func Invoke(ctx context.Context, model ChatModel, messages []Message) (res Result) {
	if model == nil {
		return Result{Failure: &CompletionFailure{Cause: errors.Wrap(ErrUnavailable, "no chat model configured")}}
	}
	defer func() {
		if r := recover(); r != nil {
			res = Result{Failure: &CompletionFailure{Cause: fmt.Errorf("chat model panicked: %v", r)}}
		}
	}()

	text, err := model.Complete(ctx, messages)
	if err != nil {
		return Result{Failure: &CompletionFailure{Cause: err}}
	}
	if strings.TrimSpace(text) == "" {
		return Result{Failure: &CompletionFailure{Cause: ErrEmptyResponse}}
	}
	return Result{Text: text}
}
