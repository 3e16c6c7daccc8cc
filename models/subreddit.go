package models

// Subreddit is a t5 thing.
type Subreddit struct {
	*Base
	ID          string
	Name        string
	DisplayName string
	Title       string
	Description string
	Subscribers int
	Over18      bool
}

func NewSubreddit(session Session, attrs Attributes) (Thing, error) {
	return &Subreddit{
		Base:        newBase(session, attrs),
		ID:          attrs.String("id"),
		Name:        attrs.String("name"),
		DisplayName: attrs.String("display_name"),
		Title:       attrs.String("title"),
		Description: attrs.String("public_description"),
		Subscribers: attrs.Int("subscribers"),
		Over18:      attrs.Bool("over18"),
	}, nil
}

func (s *Subreddit) String() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Base.String()
}
