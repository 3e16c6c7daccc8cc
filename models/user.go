package models

// User is a t2 thing.
type User struct {
	*Base
	ID           string
	Name         string
	LinkKarma    int
	CommentKarma int
	IsGold       bool
	CreatedUTC   float64
}

func NewUser(session Session, attrs Attributes) (Thing, error) {
	return &User{
		Base:         newBase(session, attrs),
		ID:           attrs.String("id"),
		Name:         attrs.String("name"),
		LinkKarma:    attrs.Int("link_karma"),
		CommentKarma: attrs.Int("comment_karma"),
		IsGold:       attrs.Bool("is_gold"),
		CreatedUTC:   attrs.Float("created_utc"),
	}, nil
}

// Fullname is built from the id since a user's name attribute is the
// username, not the t2_ identifier.
func (u *User) Fullname() string {
	if u.ID == "" {
		return ""
	}
	return "t2_" + u.ID
}

func (u *User) String() string {
	return u.Name
}
