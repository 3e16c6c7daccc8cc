package data

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kova98/redd/enums"
	"github.com/kova98/redd/models"
)

func TestNewMessage_PrivateMessage(t *testing.T) {
	thing, err := models.Materialize(nil, map[string]any{
		"kind": "t4",
		"data": map[string]any{
			"id": "m1", "name": "t4_m1", "author": "alice", "dest": "bob",
			"subject": "hi", "body": "hello", "created_utc": 1700000000.5,
		},
	})
	require.NoError(t, err)
	fetched := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	msg, ok := NewMessage(thing, enums.MessageCategoryInbox, fetched)
	require.True(t, ok)

	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, "t4_m1", msg.Fullname)
	assert.Equal(t, "t4", msg.Kind)
	assert.Equal(t, "inbox", msg.Category)
	assert.Equal(t, "alice", msg.Author)
	assert.Equal(t, "bob", msg.Dest)
	assert.Equal(t, int64(1700000000), msg.CreatedUTC.Unix())
	assert.Equal(t, fetched, msg.FetchedAt)
}

func TestNewMessage_CommentReply(t *testing.T) {
	thing, err := models.Materialize(nil, map[string]any{
		"kind": "t1",
		"data": map[string]any{"id": "c1", "author": "carol", "body": "reply", "subreddit": "golang"},
	})
	require.NoError(t, err)

	msg, ok := NewMessage(thing, enums.MessageCategoryUnread, time.Now())
	require.True(t, ok)

	assert.Equal(t, "t1_c1", msg.Fullname)
	assert.Equal(t, "golang", msg.Subject)
}

func TestNewMessage_RejectsOtherThings(t *testing.T) {
	thing, err := models.Materialize(nil, map[string]any{"kind": "t5", "data": map[string]any{"id": "x"}})
	require.NoError(t, err)

	_, ok := NewMessage(thing, enums.MessageCategoryInbox, time.Now())
	assert.False(t, ok)

	noID, err := models.Materialize(nil, map[string]any{"kind": "t4", "data": map[string]any{"body": "?"}})
	require.NoError(t, err)

	_, ok = NewMessage(noID, enums.MessageCategoryInbox, time.Now())
	assert.False(t, ok)
}
