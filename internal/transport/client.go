// Package transport provides the shared HTTP plumbing for the source
// adapters: a JSON-speaking client with per-source fixed headers. The
// adapters hand it fully-formatted URLs; all identifier substitution
// happens on their side.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/daoatlas/daoatlas/pkg/constants"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

// Client provides HTTP client functionality with fixed headers applied to
// every request. There is deliberately no retry logic: a failed call is
// absorbed or skipped at the organization-record level by the pipeline.
type Client struct {
	http    *http.Client
	headers http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithHeader adds a header applied to every request, such as the fixed
// user-agent some sources require or a bearer token.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithBearerToken sets an Authorization header with the given bearer token.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.headers.Set("Authorization", "Bearer "+token)
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON performs a GET request and decodes the JSON response into target.
func (c *Client) GetJSON(ctx context.Context, source, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapAPI(source, 0, err)
	}
	return c.do(source, req, target)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into target.
func (c *Client) PostJSON(ctx context.Context, source, url string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WrapParse("json", "request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.WrapAPI(source, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(source, req, target)
}

// do applies the fixed headers, performs the request, and decodes the response.
func (c *Client) do(source string, req *http.Request, target any) error {
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &errors.APIError{
			Source:   source,
			Endpoint: req.URL.String(),
			Message:  "request failed",
			Err:      err,
		}
	}

	return DecodeResponse(source, resp, target)
}
