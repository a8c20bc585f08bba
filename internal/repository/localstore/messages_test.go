package localstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
	"github.com/dom/job-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendMessage(t *testing.T, repos *repository.Repositories, from, to, content string) *domain.Message {
	t.Helper()
	msg, err := repos.Message.Create(context.Background(), domain.NewMessage{
		SenderID:   from,
		ReceiverID: to,
		Content:    content,
	})
	require.NoError(t, err)
	// Keep createdAt strictly increasing between sends.
	time.Sleep(2 * time.Millisecond)
	return msg
}

func TestMessages_EmptyContentRejected(t *testing.T) {
	repos := testutil.NewTestRepos(t)

	_, err := repos.Message.Create(context.Background(), domain.NewMessage{
		SenderID:   "a",
		ReceiverID: "b",
		Content:    "   ",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyMessageContent)
}

func TestMessages_ConversationChronological(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)

	sendMessage(t, repos, "a", "b", "first")
	sendMessage(t, repos, "b", "a", "second")
	sendMessage(t, repos, "a", "c", "unrelated")

	messages, err := repos.Message.Conversation(ctx, "a", "b")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
}

func TestMessages_ConversationAggregation(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)

	sendMessage(t, repos, "a", "b", "hello")
	latest := sendMessage(t, repos, "b", "a", "hi back")
	sendMessage(t, repos, "c", "a", "ping")

	conversations, err := repos.Message.Conversations(ctx, "a")
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// Sorted by last message time, newest counterpart first.
	assert.Equal(t, "c", conversations[0].UserID)
	assert.Equal(t, "b", conversations[1].UserID)

	// The b conversation keeps the most recent message, regardless of
	// direction, and counts the one unread message a received.
	assert.Equal(t, latest.ID, conversations[1].LastMessage.ID)
	assert.Equal(t, 1, conversations[1].UnreadCount)
	assert.Equal(t, 1, conversations[0].UnreadCount)
}

func TestMessages_UnreadCountOnlyCountsReceived(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)

	// a sends two, b sends one back.
	sendMessage(t, repos, "a", "b", "one")
	sendMessage(t, repos, "a", "b", "two")
	reply := sendMessage(t, repos, "b", "a", "three")

	conversations, err := repos.Message.Conversations(ctx, "a")
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 1, conversations[0].UnreadCount)

	require.NoError(t, repos.Message.MarkRead(ctx, reply.ID))

	conversations, err = repos.Message.Conversations(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, conversations[0].UnreadCount)

	// b still has both of a's messages unread.
	conversations, err = repos.Message.Conversations(ctx, "b")
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].UnreadCount)
}

func TestMessages_MarkRead(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)

	msg := sendMessage(t, repos, "a", "b", "hello")

	require.NoError(t, repos.Message.MarkRead(ctx, msg.ID))
	// Marking twice is a no-op.
	require.NoError(t, repos.Message.MarkRead(ctx, msg.ID))

	assert.ErrorIs(t, repos.Message.MarkRead(ctx, "no-such-message"), domain.ErrMessageNotFound)
}
