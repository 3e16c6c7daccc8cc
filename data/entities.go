package data

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kova98/redd/enums"
	"github.com/kova98/redd/models"
)

// Message is an archived inbox item. Comment replies land in the inbox too,
// so Kind is either t4 or t1.
type Message struct {
	ID         uuid.UUID `db:"id"`
	Fullname   string    `db:"fullname"`
	Kind       string    `db:"kind"`
	Category   string    `db:"category"`
	Author     string    `db:"author"`
	Dest       string    `db:"dest"`
	Subject    string    `db:"subject"`
	Body       string    `db:"body"`
	Language   string    `db:"language"`
	CreatedUTC time.Time `db:"created_utc"`
	FetchedAt  time.Time `db:"fetched_at"`
}

// NewMessage builds an archive row from an inbox thing. It reports false for
// things that are not messages or comment replies.
func NewMessage(thing models.Thing, category enums.MessageCategory, fetchedAt time.Time) (Message, bool) {
	msg := Message{
		ID:        uuid.New(),
		Kind:      string(thing.Kind()),
		Category:  string(category),
		FetchedAt: fetchedAt.UTC(),
	}

	switch t := thing.(type) {
	case *models.PrivateMessage:
		msg.Fullname = t.Fullname()
		msg.Author = t.Author
		msg.Dest = t.Dest
		msg.Subject = t.Subject
		msg.Body = t.Body
		msg.CreatedUTC = unixTime(t.CreatedUTC)
	case *models.Comment:
		msg.Fullname = t.Fullname()
		msg.Author = t.Author
		msg.Subject = t.Subreddit
		msg.Body = t.Body
		msg.CreatedUTC = unixTime(t.CreatedUTC)
	default:
		return Message{}, false
	}

	if msg.Fullname == "" {
		return Message{}, false
	}
	return msg, true
}

func unixTime(seconds float64) time.Time {
	sec, frac := math.Modf(seconds)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}
