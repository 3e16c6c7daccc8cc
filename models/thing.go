package models

import (
	"context"
	"net/url"

	"github.com/kova98/redd/enums"
)

// Session is the client a thing was materialized by. Things keep it so they
// can issue follow-up requests.
type Session interface {
	Do(ctx context.Context, method, path string, params url.Values) (int, []byte, error)
}

// Thing is any materialized reddit object.
type Thing interface {
	Kind() enums.Kind
	Attributes() Attributes
	Session() Session
}

// Constructor builds one variant from a flattened attribute set.
type Constructor func(session Session, attrs Attributes) (Thing, error)

// Base is the generic variant. Every other variant embeds it.
type Base struct {
	session Session
	attrs   Attributes
}

func NewBase(session Session, attrs Attributes) (Thing, error) {
	return newBase(session, attrs), nil
}

func newBase(session Session, attrs Attributes) *Base {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Base{session: session, attrs: attrs}
}

func (b *Base) Kind() enums.Kind {
	return enums.Kind(b.attrs.String("kind"))
}

// Attributes returns a copy of the flattened attribute set.
func (b *Base) Attributes() Attributes {
	return b.attrs.Clone()
}

func (b *Base) Session() Session {
	return b.session
}

// Fullname is the "t1_abc123" style identifier. Falls back to kind and id
// when the payload has no name.
func (b *Base) Fullname() string {
	if name := b.attrs.String("name"); name != "" {
		return name
	}
	id := b.attrs.String("id")
	if id == "" {
		return ""
	}
	if kind := b.Kind(); kind != enums.KindUnknown {
		return string(kind) + "_" + id
	}
	return id
}

func (b *Base) Property(name string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.attrs[name]
	return v, ok
}

func (b *Base) String() string {
	if fullname := b.Fullname(); fullname != "" {
		return fullname
	}
	if kind := b.Kind(); kind != enums.KindUnknown {
		return string(kind)
	}
	return "thing"
}
