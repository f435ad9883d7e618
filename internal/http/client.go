// Package http implements the transport and request pipeline shared by all
// resource operations.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/helpdesk-io/zdclient/internal/constants"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

const defaultUserAgent = "zdclient/1.0"

// Logger interface for HTTP logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Status     string
	Headers    nethttp.Header
	Body       []byte
}

// Client is the single transport for one client instance. The underlying
// keep-alive connection pool is shared across all concurrent calls; each call
// carries its own request and response state, so no locking is needed.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *retryablehttp.Client
	timeout    time.Duration
	userAgent  string
	logger     Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request stall timeout. The countdown restarts
// whenever response data arrives, so only a fully stalled connection times
// out.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryConfig enables opt-in transport retries for transient failures.
// The default is no retrying at all: every operation issues exactly one
// request.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// NewClient creates a new API client. authHeader is the precomputed
// Authorization value; pass "" to send unauthenticated requests (tests).
func NewClient(baseURL, authHeader string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Hand back the final response even when retries are exhausted, so a 5xx
	// surfaces as a status error rather than a swallowed "giving up" failure.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    baseURL,
		authHeader: authHeader,
		httpClient: retryClient,
		timeout:    constants.DefaultHTTPTimeout,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Close releases the idle connections held by the shared pool. The client
// must not be used after Close.
func (c *Client) Close() {
	c.httpClient.HTTPClient.CloseIdleConnections()
}

// Do executes an HTTP request against the API. The request path is prefixed
// with /api/v2; query parameters are encoded onto the URL and, for mutating
// methods, the body is JSON-encoded (nil encodes as {}).
//
// A non-2xx status yields the response together with an HTTPStatusError. A
// zero-byte body on a success status other than 204 yields EmptyReplyError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + constants.APIPrefix + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	rawBody, hasBody, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	// The watchdog aborts the in-flight request once no data has arrived for
	// a full timeout interval. It is re-armed on every received chunk and on
	// completion, so a slow but live response never races a stale timer.
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timedOut atomic.Bool

	watchdog := time.AfterFunc(c.timeout, func() {
		timedOut.Store(true)
		cancel()
	})
	defer watchdog.Stop()

	httpReq, err := retryablehttp.NewRequestWithContext(reqCtx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req, hasBody)
	c.logRequest(req, fullURL, rawBody)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.classifyError(req.Method, fullURL, err, &timedOut)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := c.readBody(resp.Body, watchdog)
	if err != nil {
		return nil, c.classifyError(req.Method, fullURL, err, &timedOut)
	}

	watchdog.Stop()

	response := &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header,
		Body:       body,
	}

	c.logResponse(response)

	if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
		return response, &zendesk.HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if len(body) == 0 && resp.StatusCode != nethttp.StatusNoContent {
		return response, &zendesk.EmptyReplyError{URL: fullURL}
	}

	return response, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// encodeBody JSON-encodes the request body for mutating methods. A nil body
// on a mutating method encodes as the empty object.
func encodeBody(req *Request) ([]byte, bool, error) {
	switch req.Method {
	case nethttp.MethodPost, nethttp.MethodPut, nethttp.MethodPatch:
	default:
		return nil, false, nil
	}

	if req.Body == nil {
		return []byte("{}"), true, nil
	}

	rawBody, err := json.Marshal(req.Body)
	if err != nil {
		return nil, false, fmt.Errorf("encoding request body: %w", err)
	}

	return rawBody, true, nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request, hasBody bool) {
	httpReq.Header.Set("Accept", "application/json;q=0.9,text/plain")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.authHeader != "" {
		httpReq.Header.Set("Authorization", c.authHeader)
	}

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// readBody accumulates the response body, re-arming the watchdog on every
// chunk so that accumulation progress counts as liveness.
func (c *Client) readBody(reader io.Reader, watchdog *time.Timer) ([]byte, error) {
	var buf bytes.Buffer

	chunk := make([]byte, constants.ReadChunkSize)

	for {
		n, err := reader.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			watchdog.Reset(c.timeout)
		}

		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}

		if err != nil {
			return nil, err
		}
	}
}

// classifyError maps a transport failure to the typed error taxonomy. The
// watchdog flag distinguishes a stall timeout from a caller cancellation,
// both of which surface as context cancellation underneath.
func (c *Client) classifyError(method, fullURL string, err error, timedOut *atomic.Bool) error {
	if timedOut.Load() {
		return &zendesk.TimeoutError{Method: method, URL: fullURL, Timeout: c.timeout}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request aborted: %w", err)
	}

	return &zendesk.TransportError{Method: method, URL: fullURL, Err: err}
}

func (c *Client) logRequest(req *Request, fullURL string, rawBody []byte) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
		"body":   string(rawBody),
	})
}

func (c *Client) logResponse(resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"body":   string(resp.Body),
	})
}
