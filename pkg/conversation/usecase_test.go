package conversation_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/llm"
	"github.com/botivate/troubleshoot/pkg/repository/memory"
	"github.com/botivate/troubleshoot/pkg/support"
)

const structuredAnswer = "**Issue Identified:** Webhook not firing\n" +
	"**Possible Causes:**\n• Trigger disabled\n" +
	"**Step-By-Step Fix:**\n1. Open Triggers\n2. Re-enable the webhook trigger"

type scriptedModel struct {
	mu     sync.Mutex
	answer string
	err    error
	calls  int32
}

func (m *scriptedModel) Complete(context.Context, []llm.Message) (string, error) {
	atomic.AddInt32(&m.calls, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.answer, m.err
}

func (m *scriptedModel) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func newService(model llm.ChatModel) (conversation.UseCase, *memory.ConversationRepository) {
	repo := memory.NewConversationRepository()
	return conversation.NewService(repo, support.NewHandler(model, zerolog.Nop())), repo
}

func TestAskAppendsTurns(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(&scriptedModel{answer: structuredAnswer})

	c, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, c.Turns)

	reply, err := svc.Ask(ctx, "user-1", c.ID, "  webhook stopped  ")
	require.NoError(t, err)
	assert.False(t, reply.Fallback)
	assert.Equal(t, structuredAnswer, reply.Answer)
	assert.True(t, reply.Sections.Complete())
	require.Len(t, reply.Turns, 2)
	assert.Equal(t, "webhook stopped", reply.Turns[0].Content)

	stored, err := svc.Get(ctx, "user-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, reply.Turns, stored.Turns)
	assert.Equal(t, structuredAnswer, stored.LastAnswer)

	_, err = svc.Ask(ctx, "user-1", c.ID, "still broken")
	require.NoError(t, err)
	stored, err = svc.Get(ctx, "user-1", c.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Turns, 4)
}

func TestAskFailureKeepsStoredHistory(t *testing.T) {
	ctx := context.Background()
	model := &scriptedModel{answer: "first"}
	svc, _ := newService(model)
	c, err := svc.Start(ctx, "u")
	require.NoError(t, err)
	_, err = svc.Ask(ctx, "u", c.ID, "q1")
	require.NoError(t, err)

	model.fail(errors.New("503 upstream"))
	reply, err := svc.Ask(ctx, "u", c.ID, "q2")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
	assert.Equal(t, support.FallbackAnswer, reply.Answer)
	assert.Len(t, reply.Turns, 2)

	stored, err := svc.Get(ctx, "u", c.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Turns, 2)
	assert.Equal(t, "first", stored.LastAnswer)
}

func TestAskValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(&scriptedModel{answer: "ok"})
	c, err := svc.Start(ctx, "owner")
	require.NoError(t, err)

	_, err = svc.Ask(ctx, "owner", c.ID, "   ")
	assert.ErrorIs(t, err, conversation.ErrEmptyQuestion)

	_, err = svc.Ask(ctx, "intruder", c.ID, "q")
	assert.ErrorIs(t, err, conversation.ErrNotFound)

	_, err = svc.Ask(ctx, "owner", uuid.New(), "q")
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func TestConcurrentAsksOnOneConversation(t *testing.T) {
	ctx := context.Background()
	model := &scriptedModel{answer: "ok"}
	svc, _ := newService(model)
	c, err := svc.Start(ctx, "u")
	require.NoError(t, err)

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Ask(ctx, "u", c.ID, "q")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := svc.Get(ctx, "u", c.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Turns, 2*n)
	assert.EqualValues(t, n, atomic.LoadInt32(&model.calls))
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(&scriptedModel{answer: "ok"})
	a, err := svc.Start(ctx, "u")
	require.NoError(t, err)
	_, err = svc.Start(ctx, "u")
	require.NoError(t, err)
	_, err = svc.Start(ctx, "other")
	require.NoError(t, err)

	items, err := svc.List(ctx, "u", 10, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.List(ctx, "u", 10, -3)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	assert.ErrorIs(t, svc.Delete(ctx, "other", a.ID), conversation.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "u", a.ID))
	_, err = svc.Get(ctx, "u", a.ID)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}
