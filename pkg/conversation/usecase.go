package conversation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/botivate/troubleshoot/pkg/support"
)

// UseCase covers the lifecycle of a support conversation.
type UseCase interface {
	Start(ctx context.Context, ownerID string) (Conversation, error)
	Ask(ctx context.Context, ownerID string, id uuid.UUID, question string) (Reply, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (Conversation, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]Conversation, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

// TurnHandler runs one troubleshooting turn; *support.Handler implements it.
type TurnHandler interface {
	Handle(ctx context.Context, in support.State) support.State
}

type service struct {
	repo    Repository
	handler TurnHandler
	locks   *keyedMutex
	now     func() time.Time
}

func NewService(repo Repository, handler TurnHandler) UseCase {
	return &service{
		repo:    repo,
		handler: handler,
		locks:   newKeyedMutex(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Start(ctx context.Context, ownerID string) (Conversation, error) {
	now := s.now()
	c := Conversation{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Turns:     []support.Turn{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Conversation{}, errors.Wrap(err, "create conversation")
	}
	return c, nil
}

// Ask runs one turn against the stored history. Turns on the same
// conversation are serialised so concurrent requests cannot interleave their
// appends. A failed completion is not an error: the reply carries the
// placeholder answer and the stored history stays as it was.
func (s *service) Ask(ctx context.Context, ownerID string, id uuid.UUID, question string) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{}, ErrEmptyQuestion
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	c, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Reply{}, err
	}

	out := s.handler.Handle(ctx, support.State{Question: question, History: c.Turns})
	reply := Reply{
		ConversationID: c.ID,
		Answer:         out.Answer,
		Sections:       support.ParseSections(out.Answer),
		Fallback:       len(out.History) == len(c.Turns),
		Turns:          out.History,
	}
	if reply.Fallback {
		return reply, nil
	}

	c.Turns = out.History
	c.LastAnswer = out.Answer
	c.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, c); err != nil {
		return Reply{}, errors.Wrap(err, "save conversation")
	}
	return reply, nil
}

func (s *service) Get(ctx context.Context, ownerID string, id uuid.UUID) (Conversation, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Conversation{}, err
	}
	if c.OwnerID != ownerID {
		return Conversation{}, ErrNotFound
	}
	return c, nil
}

func (s *service) List(ctx context.Context, ownerID string, limit, offset int) ([]Conversation, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, max(offset, 0))
}

func (s *service) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	unlock := s.locks.Lock(id)
	defer unlock()
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
