package conversation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/botivate/troubleshoot/pkg/support"
)

var (
	ErrNotFound      = errors.New("conversation not found")
	ErrEmptyQuestion = errors.New("question is empty")
)

// Conversation is the host-side record of one support chat.
type Conversation struct {
	ID         uuid.UUID      `json:"id"`
	OwnerID    string         `json:"ownerId"`
	Turns      []support.Turn `json:"turns"`
	LastAnswer string         `json:"lastAnswer"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Reply is what a caller gets back after asking a question.
type Reply struct {
	ConversationID uuid.UUID        `json:"conversationId"`
	Answer         string           `json:"answer"`
	Sections       support.Sections `json:"sections"`
	// Fallback is set when the model call failed and Answer is the placeholder.
	Fallback bool           `json:"fallback"`
	Turns    []support.Turn `json:"turns"`
}

// Repository is the storage port for conversations.
type Repository interface {
	Create(ctx context.Context, c Conversation) error
	Get(ctx context.Context, id uuid.UUID) (Conversation, error)
	Save(ctx context.Context, c Conversation) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Conversation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
