package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kova98/redd/data"
	"github.com/kova98/redd/models"
)

type fakeMessages struct {
	limit, offset int
	messages      []data.Message
	err           error
}

func (f *fakeMessages) GetMessages(limit, offset int) ([]data.Message, int, error) {
	f.limit, f.offset = limit, offset
	return f.messages, 41, f.err
}

func TestGetMessages_Pages(t *testing.T) {
	repo := &fakeMessages{messages: []data.Message{{Fullname: "t4_a", Subject: "hi", Language: "en"}}}
	h := NewMessageHandler(repo)

	res := h.GetMessages(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/messages?page=3", nil))

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, 20, repo.limit)
	assert.Equal(t, 40, repo.offset)
	body := res.Body.(models.GetMessagesResponse)
	assert.Equal(t, 41, body.Total)
	assert.Equal(t, 3, body.Page)
	require.Len(t, body.Messages, 1)
	assert.Equal(t, "en", body.Messages[0].Language)
}

func TestGetMessages_RepoError(t *testing.T) {
	h := NewMessageHandler(&fakeMessages{err: errors.New("db down")})

	res := h.GetMessages(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/messages", nil))

	assert.Equal(t, http.StatusInternalServerError, res.Code)
}
