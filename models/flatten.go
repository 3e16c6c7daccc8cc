package models

import "slices"

// FlatComments linearizes the reply tree under a submission or comment.
// Replies of a comment come right after it, ahead of its later siblings, so
// the result is a pre-order walk of the tree. MoreComments placeholders are
// kept as leaves. Any other root yields an empty slice.
func FlatComments(root Thing) []Thing {
	var children []Thing
	switch r := root.(type) {
	case *Submission:
		children = r.Comments()
	case *Comment:
		children = r.Replies()
	}

	// The stack holds the work queue reversed, so the front of the queue is
	// the end of the slice. Pushing replies in reverse puts them in front
	// of everything still queued.
	stack := slices.Clone(children)
	slices.Reverse(stack)
	flattened := make([]Thing, 0, len(children))

	for len(stack) > 0 {
		thing := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if comment, ok := thing.(*Comment); ok {
			replies := comment.Replies()
			for i := len(replies) - 1; i >= 0; i-- {
				stack = append(stack, replies[i])
			}
		}
		flattened = append(flattened, thing)
	}

	return flattened
}
