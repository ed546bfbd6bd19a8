package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/support"
)

func TestConversationRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationRepository()
	c := conversation.Conversation{ID: uuid.New(), OwnerID: "u1", Turns: []support.Turn{{Role: support.RoleHuman, Content: "q"}}}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	got.Turns[0].Content = "mutated"
	again, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "q", again.Turns[0].Content)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.Get(ctx, c.ID)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), conversation.ErrNotFound)
	assert.ErrorIs(t, repo.Save(ctx, c), conversation.ErrNotFound)
}

func TestConversationRepositoryListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		c := conversation.Conversation{ID: uuid.New(), OwnerID: "u1", UpdatedAt: base.Add(time.Duration(i) * time.Minute)}
		ids = append(ids, c.ID)
		require.NoError(t, repo.Create(ctx, c))
	}
	require.NoError(t, repo.Create(ctx, conversation.Conversation{ID: uuid.New(), OwnerID: "u2"}))

	all, err := repo.ListByOwner(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)

	page, err := repo.ListByOwner(ctx, "u1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	empty, err := repo.ListByOwner(ctx, "u1", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first, err := repo.ListByOwner(ctx, "u1", 1, -1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, ids[2], first[0].ID)
}
