package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/kova98/redd/client"
	"github.com/kova98/redd/enums"
	"github.com/kova98/redd/matchers"
	"github.com/kova98/redd/models"
)

type threadFetcher interface {
	Submission(ctx context.Context, article string) (*models.Submission, error)
}

type ThreadHandler struct {
	reddit threadFetcher
}

func NewThreadHandler(reddit threadFetcher) *ThreadHandler {
	return &ThreadHandler{reddit}
}

// GetThread returns a submission with its comment tree flattened in reading
// order. The optional q and mode query parameters filter comments by body.
func (h *ThreadHandler) GetThread(w http.ResponseWriter, r *http.Request) Result {
	article := r.PathValue("article")
	if article == "" {
		return BadRequest("Article id is required")
	}

	keyword := r.URL.Query().Get("q")
	mode := enums.MatchMode(r.URL.Query().Get("mode"))
	if mode == enums.MatchModeInvalid {
		mode = enums.MatchModeBroad
	}
	if mode != enums.MatchModeBroad && mode != enums.MatchModeExact {
		return BadRequest("Mode must be broad or exact")
	}

	sub, err := h.reddit.Submission(r.Context(), article)
	if err != nil {
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return NotFound("Thread not found")
		}
		return BadGateway(err, "Failed to load thread")
	}

	flat := models.FlatComments(sub)
	entries := flattenEntries(flat)

	if keyword != "" {
		matched := make(map[*models.Comment]bool)
		for _, c := range matchers.FilterComments(flat, keyword, mode) {
			matched[c] = true
		}
		filtered := make([]models.FlatComment, 0, len(matched))
		for i, thing := range flat {
			if c, ok := thing.(*models.Comment); ok && matched[c] {
				filtered = append(filtered, entries[i])
			}
		}
		entries = filtered
	}

	return Ok(models.ThreadResponse{
		Submission: models.SubmissionSummary{
			ID:          sub.ID,
			Title:       sub.Title,
			Author:      sub.Author,
			Subreddit:   sub.Subreddit,
			Permalink:   sub.Permalink,
			NumComments: sub.NumComments,
		},
		Comments: entries,
		Total:    len(entries),
	})
}

// flattenEntries converts a flattened thread into response entries. Depth
// is derived from parent ids: a parent always precedes its replies in a
// pre-order walk, so one pass is enough.
func flattenEntries(flat []models.Thing) []models.FlatComment {
	depths := make(map[string]int, len(flat))
	entries := make([]models.FlatComment, 0, len(flat))

	for _, thing := range flat {
		var entry models.FlatComment
		var fullname string

		switch t := thing.(type) {
		case *models.Comment:
			entry = models.FlatComment{
				Kind:     string(enums.KindComment),
				ID:       t.ID,
				ParentID: t.ParentID,
				Author:   t.Author,
				Body:     t.Body,
				Score:    t.Score,
			}
			fullname = t.Fullname()
		case *models.MoreComments:
			entry = models.FlatComment{
				Kind:         string(enums.KindMore),
				ID:           t.ID,
				ParentID:     t.ParentID,
				MoreCount:    t.Count,
				MoreChildren: t.Children,
			}
		default:
			continue
		}

		if parentDepth, ok := depths[entry.ParentID]; ok {
			entry.Depth = parentDepth + 1
		}
		if fullname != "" {
			depths[fullname] = entry.Depth
		}
		entries = append(entries, entry)
	}

	return entries
}
