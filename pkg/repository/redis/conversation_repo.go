package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/botivate/troubleshoot/pkg/conversation"
)

const keyPrefix = "troubleshoot:"

// ConversationRepository keeps each conversation as a JSON value and indexes
// owners in a sorted set scored by last update. A non-zero ttl expires idle
// conversations.
type ConversationRepository struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

func NewConversationRepository(client goredis.UniversalClient, ttl time.Duration) *ConversationRepository {
	return &ConversationRepository{client: client, ttl: ttl}
}

func conversationKey(id uuid.UUID) string { return keyPrefix + "conversation:" + id.String() }

func ownerKey(ownerID string) string { return keyPrefix + "owner:" + ownerID }

func (r *ConversationRepository) Create(ctx context.Context, c conversation.Conversation) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode conversation")
	}
	_, err = r.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Set(ctx, conversationKey(c.ID), data, r.ttl)
		p.ZAdd(ctx, ownerKey(c.OwnerID), goredis.Z{Score: score(c.UpdatedAt), Member: c.ID.String()})
		return nil
	})
	return errors.Wrap(err, "store conversation")
}

func (r *ConversationRepository) Get(ctx context.Context, id uuid.UUID) (conversation.Conversation, error) {
	data, err := r.client.Get(ctx, conversationKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return conversation.Conversation{}, conversation.ErrNotFound
	}
	if err != nil {
		return conversation.Conversation{}, errors.Wrap(err, "load conversation")
	}
	var c conversation.Conversation
	if err := json.Unmarshal(data, &c); err != nil {
		return conversation.Conversation{}, errors.Wrap(err, "decode conversation")
	}
	return c, nil
}

func (r *ConversationRepository) Save(ctx context.Context, c conversation.Conversation) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode conversation")
	}
	var updated *goredis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		updated = p.SetXX(ctx, conversationKey(c.ID), data, r.ttl)
		p.ZAddXX(ctx, ownerKey(c.OwnerID), goredis.Z{Score: score(c.UpdatedAt), Member: c.ID.String()})
		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		return errors.Wrap(err, "update conversation")
	}
	if !updated.Val() {
		return conversation.ErrNotFound
	}
	return nil
}

func (r *ConversationRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]conversation.Conversation, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)
	ids, err := r.client.ZRevRange(ctx, ownerKey(ownerID), int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "list owner conversations")
	}
	out := make([]conversation.Conversation, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyPrefix + "conversation:" + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "load conversations")
	}

	var stale []any
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var c conversation.Conversation
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, errors.Wrap(err, "decode conversation")
		}
		out = append(out, c)
	}
	if len(stale) > 0 {
		// expired values leave their index entries behind
		_ = r.client.ZRem(ctx, ownerKey(ownerID), stale...).Err()
	}
	return out, nil
}

func (r *ConversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, conversationKey(id))
		p.ZRem(ctx, ownerKey(c.OwnerID), id.String())
		return nil
	})
	return errors.Wrap(err, "delete conversation")
}

func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}
