package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/support"
)

// ConversationRepository stores conversations with their turns as JSONB.
type ConversationRepository struct {
	pool *pgxpool.Pool
}

func NewConversationRepository(ctx context.Context, pool *pgxpool.Pool) (*ConversationRepository, error) {
	r := &ConversationRepository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ConversationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS conversations (
	id UUID PRIMARY KEY,
	owner_id TEXT NOT NULL,
	turns JSONB NOT NULL DEFAULT '[]'::jsonb,
	last_answer TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS conversations_owner_updated_idx ON conversations (owner_id, updated_at DESC);
`)
	return errors.Wrap(err, "ensure conversations schema")
}

func (r *ConversationRepository) Create(ctx context.Context, c conversation.Conversation) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	turns, err := marshalTurns(c.Turns)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO conversations (id, owner_id, turns, last_answer, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, c.ID, c.OwnerID, turns, c.LastAnswer, c.CreatedAt, c.UpdatedAt)
	return errors.Wrap(err, "insert conversation")
}

func (r *ConversationRepository) Get(ctx context.Context, id uuid.UUID) (conversation.Conversation, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, turns, last_answer, created_at, updated_at
FROM conversations WHERE id = $1
`, id)
	c, err := scanConversation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return conversation.Conversation{}, conversation.ErrNotFound
	}
	return c, err
}

func (r *ConversationRepository) Save(ctx context.Context, c conversation.Conversation) error {
	turns, err := marshalTurns(c.Turns)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE conversations SET turns = $2, last_answer = $3, updated_at = $4
WHERE id = $1
`, c.ID, turns, c.LastAnswer, c.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "update conversation")
	}
	if tag.RowsAffected() == 0 {
		return conversation.ErrNotFound
	}
	return nil
}

func (r *ConversationRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]conversation.Conversation, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, turns, last_answer, created_at, updated_at
FROM conversations WHERE owner_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list conversations")
	}
	defer rows.Close()

	out := make([]conversation.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterate conversations")
}

func (r *ConversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete conversation")
	}
	if tag.RowsAffected() == 0 {
		return conversation.ErrNotFound
	}
	return nil
}

func scanConversation(row pgx.Row) (conversation.Conversation, error) {
	var c conversation.Conversation
	var turns []byte
	if err := row.Scan(&c.ID, &c.OwnerID, &turns, &c.LastAnswer, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return conversation.Conversation{}, err
	}
	if err := json.Unmarshal(turns, &c.Turns); err != nil {
		return conversation.Conversation{}, errors.Wrap(err, "decode turns")
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func marshalTurns(turns []support.Turn) ([]byte, error) {
	if turns == nil {
		turns = []support.Turn{}
	}
	b, err := json.Marshal(turns)
	return b, errors.Wrap(err, "encode turns")
}
