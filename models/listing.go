package models

import "github.com/pkg/errors"

// Listing is a page of things plus the cursors around it.
type Listing struct {
	*Base
	Before   string
	After    string
	Children []Thing
}

func NewListing(session Session, attrs Attributes) (Thing, error) {
	l := &Listing{
		Base:   newBase(session, attrs),
		Before: attrs.String("before"),
		After:  attrs.String("after"),
	}

	switch children := attrs["children"].(type) {
	case nil:
		l.Children = []Thing{}
	case []any:
		things, err := materializeChildren(session, children)
		if err != nil {
			return nil, errors.Wrap(err, "children")
		}
		l.Children = things
	default:
		return nil, errors.Errorf("children: expected array, got %T", children)
	}

	return l, nil
}

func (l *Listing) Property(name string) (any, bool) {
	if l == nil {
		return nil, false
	}
	if name == "children" {
		return l.Children, true
	}
	return l.Base.Property(name)
}

// listingChildren accepts the shapes reddit uses for nested collections:
// nothing, an empty string, a Listing envelope or a bare array of envelopes.
func listingChildren(session Session, value any) ([]Thing, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return nil, errors.Errorf("expected listing, got string %q", v)
	case []any:
		return materializeChildren(session, v)
	case map[string]any, Attributes:
		thing, err := materializeChild(session, v)
		if err != nil {
			return nil, err
		}
		listing, ok := thing.(*Listing)
		if !ok {
			return nil, errors.Errorf("expected listing, got kind %q", thing.Kind())
		}
		return listing.Children, nil
	}
	return nil, errors.Errorf("expected listing, got %T", value)
}
