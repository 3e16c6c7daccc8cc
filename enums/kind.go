package enums

// Kind is the wire discriminator reddit attaches to every object it returns.
type Kind string

const (
	KindUnknown Kind = ""

	KindListing      Kind = "Listing"
	KindWikiPage     Kind = "wikipage"
	KindLabeledMulti Kind = "LabeledMulti"

	// KindMore marks a truncated reply branch. It has to be resolved with a
	// separate request and never carries replies of its own.
	KindMore Kind = "more"

	KindComment        Kind = "t1"
	KindUser           Kind = "t2"
	KindSubmission     Kind = "t3"
	KindPrivateMessage Kind = "t4"
	KindSubreddit      Kind = "t5"
)
