package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Executor sends a prepared request. *http.Client satisfies it, including
// the OAuth2 client built by NewHTTPClient.
type Executor interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reddit returned status %d: %s", e.Code, e.Body)
}

type Client struct {
	logger    *slog.Logger
	executor  Executor
	baseURL   string
	userAgent string
}

func NewClient(logger *slog.Logger, executor Executor, baseURL, userAgent string) *Client {
	return &Client{
		logger:    logger,
		executor:  executor,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// Do performs a request against the API and returns the status code and
// body. GET params go in the query string, everything else is sent as a
// form body.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values) (int, []byte, error) {
	req, err := c.newRequest(ctx, method, path, params)
	if err != nil {
		return 0, nil, errors.Wrap(err, "create request")
	}

	start := time.Now()
	resp, err := c.executor.Do(req)
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		return 0, nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()
	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrapf(err, "read %s %s", method, path)
	}

	c.logger.Debug("reddit request", "method", method, "path", path, "code", resp.StatusCode, "elapsed_ms", elapsed.Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, &StatusError{Code: resp.StatusCode, Body: truncate(string(body), 300)}
	}
	return resp.StatusCode, body, nil
}

func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	_, body, err := c.Do(ctx, http.MethodGet, path, params)
	return body, err
}

func (c *Client) Post(ctx context.Context, path string, params url.Values) ([]byte, error) {
	_, body, err := c.Do(ctx, http.MethodPost, path, params)
	return body, err
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values) (*http.Request, error) {
	if params == nil {
		params = url.Values{}
	}
	target := c.baseURL + path

	var body io.Reader
	if method == http.MethodGet {
		query := cloneValues(params)
		query.Set("raw_json", "1")
		target += "?" + query.Encode()
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
