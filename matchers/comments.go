package matchers

import (
	"github.com/kova98/redd/enums"
	"github.com/kova98/redd/models"
)

// FilterComments keeps the real comments of a flattened thread whose body
// matches keyword. Placeholders are dropped since they carry no text.
func FilterComments(flat []models.Thing, keyword string, mode enums.MatchMode) []*models.Comment {
	matched := make([]*models.Comment, 0)
	for _, thing := range flat {
		comment, ok := thing.(*models.Comment)
		if !ok {
			continue
		}
		if Matches(comment.Body, keyword, mode) {
			matched = append(matched, comment)
		}
	}
	return matched
}
