package zendesk

import (
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a zendesk.Client.
//
// # Authentication
//
// Two credential modes are supported:
//  1. API token (OAuth false): Email and Token are both required. The
//     Authorization header is the Basic scheme over "email/token:token".
//  2. OAuth (OAuth true): Token is required, Email is ignored. The
//     Authorization header is "Bearer <token>".
//
// The header value is derived exactly once at construction and reused by
// every request; it is never recomputed per call.
//
// # Timeouts and cancellation
//
// Timeout bounds each request: the countdown restarts whenever response data
// arrives, so only a fully stalled connection times out. The zero value means
// the 30 second default. Callers can additionally cancel any in-flight call
// through the context passed to client methods, independent of the deadline.
//
// # Retries
//
// The client never retries on its own; every operation issues exactly one
// HTTP request. RetryMax exists for callers who explicitly want the transport
// to re-issue transient failures and defaults to 0 (off).
type Config struct {
	// URL: base URL for the Zendesk instance
	// (e.g., "https://example.zendesk.com"). zdclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no scheme
	// is present. Required.
	URL string

	// Token: API token or OAuth access token, depending on OAuth. Required.
	Token string

	// Email: account email for API token authentication. Required unless
	// OAuth is true.
	Email string

	// OAuth: when true, Token is sent as a Bearer token and Email is not
	// required.
	OAuth bool

	// Timeout: per-request stall timeout. Zero means 30 seconds.
	Timeout time.Duration

	// RetryMax: maximum number of transport-level retries for transient
	// failures. 0 (the default) disables retrying entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

// Validate checks that all required construction fields are present.
func (c *Config) Validate() error {
	if c.URL == "" {
		return &ConfigError{Field: "url"}
	}

	if c.Token == "" {
		return &ConfigError{Field: "token"}
	}

	if !c.OAuth && c.Email == "" {
		return &ConfigError{Field: "email"}
	}

	return nil
}
