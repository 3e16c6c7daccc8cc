package client

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/proxy"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const requestTimeout = 10 * time.Second

// Credentials identify the reddit application. An empty ClientID skips
// OAuth2 and returns the bare transport.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	UserAgent    string
}

// NewHTTPClient builds the executor used by Client: an optional SOCKS5
// proxy underneath an OAuth2 client-credentials token source.
func NewHTTPClient(ctx context.Context, creds Credentials, proxyURL string) (*http.Client, error) {
	base, err := baseClient(proxyURL)
	if err != nil {
		return nil, err
	}
	base.Transport = &userAgentTransport{next: transportOf(base), userAgent: creds.UserAgent}

	if creds.ClientID == "" {
		return base, nil
	}

	conf := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// Token requests go through the same proxy and user agent.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	client := conf.Client(ctx)
	client.Timeout = requestTimeout
	return client, nil
}

func baseClient(proxyURL string) (*http.Client, error) {
	client := &http.Client{Timeout: requestTimeout}

	if proxyURL == "" {
		return client, nil
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse proxy url")
	}
	if parsedURL.Scheme != "socks5" {
		return nil, errors.Errorf("unsupported proxy scheme %q", parsedURL.Scheme)
	}

	var auth *proxy.Auth
	if parsedURL.User != nil {
		password, _ := parsedURL.User.Password()
		auth = &proxy.Auth{
			User:     parsedURL.User.Username(),
			Password: password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
	if err != nil {
		return nil, errors.Wrap(err, "socks5 dialer")
	}

	client.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		},
	}
	slog.Info("using SOCKS5 proxy", "proxy", parsedURL.Host)

	return client, nil
}

func transportOf(c *http.Client) http.RoundTripper {
	if c.Transport != nil {
		return c.Transport
	}
	return http.DefaultTransport
}

// userAgentTransport sets the User-Agent reddit requires on every request,
// token requests included.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}
