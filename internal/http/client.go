// Package http implements the request/response pipeline shared by every
// resource module: URL construction, authorization application, dispatch,
// and error normalization.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lattice-io/lattice-client/internal/auth"
	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/pkg/lattice"
)

// Request represents an outgoing API request.
type Request struct {
	Method string
	Path   string
	// Query is the pre-encoded query string, typically from
	// lattice.ListOptions.Encode so parameter ordering stays deterministic.
	Query   string
	Headers map[string]string
	Body    interface{}
}

// Response represents a received API response with its body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport used by resource modules. Every call is a
// single-shot request with no retries, caching, or client-side queuing.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authorizer auth.Authorizer
	logger     lattice.Logger
	userAgent  string
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for diagnostic traces.
func WithLogger(logger lattice.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response tracing.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient substitutes the underlying transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new transport for the given base URL. A nil authorizer
// sends requests without authorization.
func NewClient(baseURL string, authorizer auth.Authorizer, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authorizer: authorizer,
		httpClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
		userAgent: "lattice-client-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Failed responses (non-2xx) are returned together
// with the normalized error; network-level failures surface as a generic
// APIError and are never retried.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.trace(req)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.debug && c.logger != nil {
			c.logger.Error("HTTP Transport Error", map[string]interface{}{
				"method": req.Method,
				"path":   req.Path,
				"error":  err.Error(),
			})
		}

		return nil, &lattice.APIError{
			StatusCode: 0,
			Type:       lattice.ErrorTypeUnknown,
			Message:    lattice.UnknownErrorMessage,
		}
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, lattice.ErrorFromResponse(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

// Get issues a GET request. A non-empty query must already be encoded.
func (c *Client) Get(ctx context.Context, path, query string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Put issues a PUT request. A nil body is omitted entirely rather than
// serialized as the JSON literal "null".
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete issues a DELETE request with an optional body.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
		Body:   body,
	})
}

// buildHTTPRequest assembles the final request: URL, body, headers, and, as
// the last step before dispatch, authorization.
func (c *Client) buildHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	fullURL := c.baseURL + req.Path
	if req.Query != "" {
		fullURL += "?" + req.Query
	}

	var bodyReader io.Reader

	hasBody := req.Body != nil
	if hasBody {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.authorizer != nil {
		c.authorizer.Apply(httpReq)
	}

	return httpReq, nil
}

// trace emits the diagnostic trace before dispatch: operation and URL, plus
// the payload for mutating operations. Purely observational.
func (c *Client) trace(req *Request) {
	if !c.debug || c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	}

	if req.Query != "" {
		fields["query"] = req.Query
	}

	if req.Body != nil {
		fields["payload"] = req.Body
	}

	c.logger.Debug("HTTP Request", fields)
}
