package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/support"
)

// ConversationRepository keeps conversations for the lifetime of the process.
type ConversationRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]conversation.Conversation
}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{items: make(map[uuid.UUID]conversation.Conversation)}
}

func (r *ConversationRepository) Create(_ context.Context, c conversation.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = clone(c)
	return nil
}

func (r *ConversationRepository) Get(_ context.Context, id uuid.UUID) (conversation.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return conversation.Conversation{}, conversation.ErrNotFound
	}
	return clone(c), nil
}

func (r *ConversationRepository) Save(_ context.Context, c conversation.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return conversation.ErrNotFound
	}
	r.items[c.ID] = clone(c)
	return nil
}

func (r *ConversationRepository) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]conversation.Conversation, error) {
	r.mu.RLock()
	out := make([]conversation.Conversation, 0)
	for _, c := range r.items {
		if c.OwnerID == ownerID {
			out = append(out, clone(c))
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	offset = max(offset, 0)
	if offset >= len(out) {
		return []conversation.Conversation{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *ConversationRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return conversation.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func clone(c conversation.Conversation) conversation.Conversation {
	c.Turns = append([]support.Turn{}, c.Turns...)
	return c
}
