// Package http wraps the HTTP transport used to talk to the Spree API:
// authentication header, form encoding, retry configuration, debug logging,
// and mapping of non-2xx responses to typed errors.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/openlabs/spree-go/pkg/spree"
)

const defaultUserAgent = "spree-go-client/1.0"

// Logger interface for HTTP request/response logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the Spree API.
type Request struct {
	Method string
	Path   string
	// Query parameters appended to the URL.
	Query url.Values
	// Form is sent form-urlencoded as the request body when non-nil.
	Form url.Values
	// Headers are additional headers for this request.
	Headers map[string]string
}

// Response represents an HTTP response from the Spree API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport-level retries for transient failures
// (connection errors, 429, 5xx). Retries are disabled when this option is not
// applied.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets a default timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// Client is an HTTP client for the Spree API.
type Client struct {
	baseURL     string
	token       string
	userAgent   string
	retryClient *retryablehttp.Client
	logger      Logger
	debug       bool
}

// NewClient creates a new HTTP client. The token is attached to every request
// as the X-Spree-Token header; an empty token sends no header.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	// No retries unless the caller opts in through WithRetryConfig.
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Keep the final response when retries are exhausted so its status and
	// body can be mapped to a typed error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		token:       token,
		userAgent:   defaultUserAgent,
		retryClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and returns the response. Non-2xx statuses return
// both the response and a *spree.APIError built from it.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.token != "" {
		httpReq.Header.Set("X-Spree-Token", c.token)
	}

	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logRequest(req, fullURL)

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	c.logResponse(resp)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, spree.NewAPIError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// PostForm performs a POST request with a form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Form: form})
}

// PutForm performs a PUT request with a form-urlencoded body.
func (c *Client) PutForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Form: form})
}

// PutQuery performs a PUT request carrying the payload as query parameters
// with an empty body. The shipment transition endpoints expect this shape.
func (c *Client) PutQuery(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Query: query})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) logRequest(req *Request, fullURL string) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	})
}

func (c *Client) logResponse(resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"bytes":  len(resp.Body),
	})
}
