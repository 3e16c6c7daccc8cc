package models

import "github.com/kova98/redd/enums"

// constructors is filled once in init and never written again, so lookups
// are safe from any goroutine. It is populated in init because the listing
// and comment constructors materialize their children through Resolve.
var constructors map[enums.Kind]Constructor

func init() {
	constructors = map[enums.Kind]Constructor{
		enums.KindListing:        NewListing,
		enums.KindWikiPage:       NewWikiPage,
		enums.KindLabeledMulti:   NewLabeledMulti,
		enums.KindMore:           NewMoreComments,
		enums.KindComment:        NewComment,
		enums.KindUser:           NewUser,
		enums.KindSubmission:     NewSubmission,
		enums.KindPrivateMessage: NewPrivateMessage,
		enums.KindSubreddit:      NewSubreddit,
	}
}

// Resolve returns the constructor registered for kind, or NewBase when the
// kind is empty or unknown.
func Resolve(kind enums.Kind) Constructor {
	if c, ok := constructors[kind]; ok {
		return c
	}
	return NewBase
}

// Registered reports whether kind has a dedicated constructor.
func Registered(kind enums.Kind) bool {
	_, ok := constructors[kind]
	return ok
}
