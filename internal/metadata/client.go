package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultAccept asks the server for the v2.2 metadata format.
const DefaultAccept = "application/vnd.initializr.v2.2+json"

const userAgent = "spring-initializr-cli"

// Client fetches the metadata document. It performs exactly one request per
// Fetch: no retry, no caching.
type Client struct {
	url        string
	accept     string
	httpClient *http.Client
	timeout    time.Duration
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAccept overrides the Accept header.
func WithAccept(accept string) Option {
	return func(c *Client) {
		if accept != "" {
			c.accept = accept
		}
	}
}

// WithTimeout bounds the whole request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client for the endpoint at url.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:        url,
		accept:     DefaultAccept,
		httpClient: &http.Client{},
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// URL returns the endpoint the client fetches from.
func (c *Client) URL() string { return c.url }

// Fetch performs the request and returns the parsed document. Every failure
// is reported as a *FetchError.
func (c *Client) Fetch(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", c.accept)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("fetching metadata", "url", c.url, "accept", c.accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("metadata response", "status", resp.StatusCode, "contentType", resp.Header.Get("Content-Type"))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("reading response body: %w", err)}
	}

	doc, err := Parse(body)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	return doc, nil
}
