package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/kova98/redd/enums"
	"github.com/kova98/redd/models"
)

const maxConcurrent = 4

// MyMessages lists the messages in one category of the authenticated
// user's mailbox. mark controls whether reddit clears the unread flag.
// params may carry the usual listing options (after, before, count, limit).
func (c *Client) MyMessages(ctx context.Context, category enums.MessageCategory, mark bool, params url.Values) (*models.Listing, error) {
	if !category.Valid() {
		return nil, errors.Errorf("my messages: unknown category %q", category)
	}

	query := cloneValues(params)
	query.Set("mark", strconv.FormatBool(mark))

	thing, err := c.RequestObject(ctx, http.MethodGet, fmt.Sprintf("/message/%s.json", category), query)
	if err != nil {
		return nil, errors.Wrapf(err, "my messages %s", category)
	}
	listing, ok := thing.(*models.Listing)
	if !ok {
		return nil, errors.Errorf("my messages %s: expected listing, got %T", category, thing)
	}
	return listing, nil
}

// BatchMyMessages fetches several categories concurrently. Results are in
// the same order as categories.
func (c *Client) BatchMyMessages(ctx context.Context, categories []enums.MessageCategory, mark bool) ([]*models.Listing, error) {
	results := make([]*models.Listing, len(categories))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, category := range categories {
		g.Go(func() error {
			listing, err := c.MyMessages(ctx, category, mark, nil)
			if err != nil {
				return err
			}
			results[i] = listing
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ReadAllMessages marks every message in the inbox as read.
func (c *Client) ReadAllMessages(ctx context.Context) error {
	if _, err := c.Post(ctx, "/api/read_all_messages", nil); err != nil {
		return errors.Wrap(err, "read all messages")
	}
	return nil
}
