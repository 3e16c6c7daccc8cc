package models

import "github.com/pkg/errors"

// PrivateMessage is a t4 thing. Comment replies delivered to the inbox are
// t1 things and are materialized as Comment instead.
type PrivateMessage struct {
	*Base
	ID         string
	Name       string
	Author     string
	Dest       string
	Subject    string
	Body       string
	Context    string
	Subreddit  string
	New        bool
	WasComment bool
	CreatedUTC float64
	replies    []Thing
}

func NewPrivateMessage(session Session, attrs Attributes) (Thing, error) {
	replies, err := listingChildren(session, attrs["replies"])
	if err != nil {
		return nil, errors.Wrap(err, "replies")
	}

	return &PrivateMessage{
		Base:       newBase(session, attrs),
		ID:         attrs.String("id"),
		Name:       attrs.String("name"),
		Author:     attrs.String("author"),
		Dest:       attrs.String("dest"),
		Subject:    attrs.String("subject"),
		Body:       attrs.String("body"),
		Context:    attrs.String("context"),
		Subreddit:  attrs.String("subreddit"),
		New:        attrs.Bool("new"),
		WasComment: attrs.Bool("was_comment"),
		CreatedUTC: attrs.Float("created_utc"),
		replies:    replies,
	}, nil
}

func (m *PrivateMessage) Replies() []Thing {
	return m.replies
}

func (m *PrivateMessage) Property(name string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if name == "replies" {
		return m.replies, true
	}
	return m.Base.Property(name)
}
