package models

import (
	"slices"

	"github.com/pkg/errors"
)

// Submission is a t3 thing, a link or self post.
type Submission struct {
	*Base
	ID          string
	Name        string
	Title       string
	Selftext    string
	Author      string
	Subreddit   string
	URL         string
	Permalink   string
	Score       int
	NumComments int
	Over18      bool
	CreatedUTC  float64
	comments    []Thing
}

func NewSubmission(session Session, attrs Attributes) (Thing, error) {
	comments, err := listingChildren(session, attrs["comments"])
	if err != nil {
		return nil, errors.Wrap(err, "comments")
	}

	return &Submission{
		Base:        newBase(session, attrs),
		ID:          attrs.String("id"),
		Name:        attrs.String("name"),
		Title:       attrs.String("title"),
		Selftext:    attrs.String("selftext"),
		Author:      attrs.String("author"),
		Subreddit:   attrs.String("subreddit"),
		URL:         attrs.String("url"),
		Permalink:   attrs.String("permalink"),
		Score:       attrs.Int("score"),
		NumComments: attrs.Int("num_comments"),
		Over18:      attrs.Bool("over_18"),
		CreatedUTC:  attrs.Float("created_utc"),
		comments:    comments,
	}, nil
}

// Comments returns the top-level comments. The slice is owned by the
// submission and must not be modified.
func (s *Submission) Comments() []Thing {
	return s.comments
}

// WithComments returns a copy of s carrying the given top-level comments.
func (s *Submission) WithComments(comments []Thing) *Submission {
	cp := *s
	cp.comments = slices.Clone(comments)
	return &cp
}

func (s *Submission) Property(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	if name == "comments" {
		return s.comments, true
	}
	return s.Base.Property(name)
}
