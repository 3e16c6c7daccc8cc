package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/kova98/redd/models"
)

// RequestObject performs a request and materializes the response body. A
// body that is not a JSON object yields a nil thing.
func (c *Client) RequestObject(ctx context.Context, method, path string, params url.Values) (models.Thing, error) {
	_, body, err := c.Do(ctx, method, path, params)
	if err != nil {
		return nil, err
	}
	return c.objectFromBody(body)
}

func (c *Client) objectFromBody(body []byte) (models.Thing, error) {
	thing, err := models.MaterializeJSON(c, body)
	if err != nil {
		return nil, err
	}
	c.countMaterialized(thing)
	return thing, nil
}

func (c *Client) countMaterialized(thing models.Thing) {
	if thing == nil {
		return
	}
	materializedTotal.WithLabelValues(kindLabel(thing.Kind())).Inc()
	if listing, ok := thing.(*models.Listing); ok {
		for _, child := range listing.Children {
			materializedTotal.WithLabelValues(kindLabel(child.Kind())).Inc()
		}
	}
}

// Submission loads a submission with its top-level comments attached. The
// comments endpoint answers with two listings: the submission, then its
// comment tree.
func (c *Client) Submission(ctx context.Context, article string) (*models.Submission, error) {
	if article == "" {
		return nil, errors.New("submission: empty article id")
	}

	body, err := c.Get(ctx, fmt.Sprintf("/comments/%s.json", url.PathEscape(article)), nil)
	if err != nil {
		return nil, err
	}

	var parts []any
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, errors.Wrap(err, "submission: decode response")
	}
	if len(parts) != 2 {
		return nil, errors.Errorf("submission: expected 2 listings, got %d elements", len(parts))
	}

	head, err := c.listing(parts[0])
	if err != nil {
		return nil, errors.Wrap(err, "submission")
	}
	if len(head.Children) == 0 {
		return nil, errors.Errorf("submission %s: empty listing", article)
	}
	sub, ok := head.Children[0].(*models.Submission)
	if !ok {
		return nil, errors.Errorf("submission %s: expected t3, got %q", article, head.Children[0].Kind())
	}

	comments, err := c.listing(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "submission comments")
	}

	return sub.WithComments(comments.Children), nil
}

func (c *Client) listing(body any) (*models.Listing, error) {
	thing, err := models.Materialize(c, body)
	if err != nil {
		return nil, err
	}
	c.countMaterialized(thing)
	listing, ok := thing.(*models.Listing)
	if !ok {
		return nil, errors.Errorf("expected listing, got %T", thing)
	}
	return listing, nil
}
