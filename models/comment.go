package models

import "github.com/pkg/errors"

// Comment is a t1 thing. Its replies hold comments and MoreComments
// placeholders.
type Comment struct {
	*Base
	ID         string
	Name       string
	Author     string
	Body       string
	ParentID   string
	LinkID     string
	Subreddit  string
	Score      int
	CreatedUTC float64
	replies    []Thing
}

func NewComment(session Session, attrs Attributes) (Thing, error) {
	replies, err := listingChildren(session, attrs["replies"])
	if err != nil {
		return nil, errors.Wrap(err, "replies")
	}

	return &Comment{
		Base:       newBase(session, attrs),
		ID:         attrs.String("id"),
		Name:       attrs.String("name"),
		Author:     attrs.String("author"),
		Body:       attrs.String("body"),
		ParentID:   attrs.String("parent_id"),
		LinkID:     attrs.String("link_id"),
		Subreddit:  attrs.String("subreddit"),
		Score:      attrs.Int("score"),
		CreatedUTC: attrs.Float("created_utc"),
		replies:    replies,
	}, nil
}

// Replies returns the direct replies. The slice is owned by the comment and
// must not be modified.
func (c *Comment) Replies() []Thing {
	return c.replies
}

func (c *Comment) Property(name string) (any, bool) {
	if c == nil {
		return nil, false
	}
	if name == "replies" {
		return c.replies, true
	}
	return c.Base.Property(name)
}

// MoreComments stands in for a branch the API truncated. Children holds the
// ids that a follow-up request would load.
type MoreComments struct {
	*Base
	ID       string
	Name     string
	ParentID string
	Count    int
	Children []string
}

func NewMoreComments(session Session, attrs Attributes) (Thing, error) {
	return &MoreComments{
		Base:     newBase(session, attrs),
		ID:       attrs.String("id"),
		Name:     attrs.String("name"),
		ParentID: attrs.String("parent_id"),
		Count:    attrs.Int("count"),
		Children: attrs.Strings("children"),
	}, nil
}
