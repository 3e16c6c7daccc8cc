package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kova98/redd/data"
)

type MessageRepo struct {
	db *sqlx.DB
}

func NewMessageRepo(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db}
}

func (r *MessageRepo) SaveMessages(messages []data.Message) error {
	if len(messages) == 0 {
		return nil
	}

	query := `
		INSERT INTO messages (id, fullname, kind, category, author, dest, subject, body, language, created_utc, fetched_at)
		VALUES (:id, :fullname, :kind, :category, :author, :dest, :subject, :body, :language, :created_utc, :fetched_at)
		ON CONFLICT (fullname) DO NOTHING`

	_, err := r.db.NamedExec(query, messages)
	if err != nil {
		return fmt.Errorf("save messages: %w", err)
	}

	return nil
}

func (r *MessageRepo) GetMessages(limit, offset int) ([]data.Message, int, error) {
	var total int
	if err := r.db.Get(&total, "SELECT COUNT(*) FROM messages"); err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	messages := []data.Message{}
	query := `
		SELECT id, fullname, kind, category, author, dest, subject, body, language, created_utc, fetched_at
		FROM messages
		ORDER BY created_utc DESC
		LIMIT $1 OFFSET $2`

	err := r.db.Select(&messages, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get messages: %w", err)
	}

	return messages, total, nil
}
