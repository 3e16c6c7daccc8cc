package handlers

import (
	"net/http"
	"strconv"

	"github.com/kova98/redd/data"
	"github.com/kova98/redd/models"
)

type messageLister interface {
	GetMessages(limit, offset int) ([]data.Message, int, error)
}

type MessageHandler struct {
	repo messageLister
}

func NewMessageHandler(repo messageLister) *MessageHandler {
	return &MessageHandler{repo}
}

func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) Result {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage := 20
	offset := (page - 1) * perPage

	messages, total, err := h.repo.GetMessages(perPage, offset)
	if err != nil {
		return InternalError(err, "get messages")
	}

	res := models.GetMessagesResponse{
		Messages: make([]models.Message, 0, len(messages)),
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}

	for _, m := range messages {
		res.Messages = append(res.Messages, models.Message{
			Fullname:   m.Fullname,
			Kind:       m.Kind,
			Category:   m.Category,
			Author:     m.Author,
			Subject:    m.Subject,
			Body:       m.Body,
			Language:   m.Language,
			CreatedUTC: m.CreatedUTC,
		})
	}

	return Ok(res)
}
