package todo

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to a TODO API. It holds no per-call state and is safe for
// concurrent use; every operation is independent of every other.
type Client struct {
	baseURL   string
	transport Transport
	logger    *log.Logger
}

// NewClient creates a new TODO API client.
//
// Options:
//   - WithBaseURL: API base URL (default: http://jsonplaceholder.typicode.com)
//   - WithTimeout: HTTP client timeout (default: 30s)
//   - WithHTTPClient: custom *http.Client for the default transport
//   - WithTransport: custom Transport, e.g. a test double
//   - WithLogger: per-exchange logging (default: discarded)
//
// Example:
//
//	client, err := todo.NewClient(todo.WithBaseURL("http://localhost:7433"))
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	baseURL, err := normalizeBaseURL(cfg.baseURL)
	if err != nil {
		return nil, err
	}

	transport := cfg.transport
	if transport == nil {
		httpClient := cfg.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.timeout}
		}
		transport = NewHTTPTransport(httpClient)
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Client{
		baseURL:   baseURL,
		transport: transport,
		logger:    logger,
	}, nil
}

// BaseURL returns the normalized base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// normalizeBaseURL checks that raw is an absolute http(s) URL and strips any
// trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}
