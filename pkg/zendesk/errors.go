package zendesk

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ConfigError reports a missing required construction field. It is returned
// synchronously from client constructors and is fatal to construction.
type ConfigError struct {
	Field string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required config field %q", e.Field)
}

// TimeoutError reports that no terminal transport event occurred within the
// deadline. The in-flight request has been aborted.
type TimeoutError struct {
	Method  string
	URL     string
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %s: %s %s", e.Timeout, e.Method, e.URL)
}

// TransportError reports a low-level connection failure (DNS, refused, reset).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying connection error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// EmptyReplyError reports that the connection succeeded but the response body
// was empty where a body was expected.
type EmptyReplyError struct {
	URL string
}

// Error implements the error interface.
func (e *EmptyReplyError) Error() string {
	return "empty reply from Zendesk"
}

// HTTPStatusError reports a status code outside [200,300). The message is
// derived from the status text, never from a partially decoded body.
type HTTPStatusError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Status)
}

// MalformedResponseError reports a response body that was received but could
// not be decoded as JSON. It wraps the parse error.
type MalformedResponseError struct {
	Err error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed JSON response: %v", e.Err)
}

// Unwrap returns the underlying parse error.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ShapeError reports valid JSON whose envelope is missing the expected field.
type ShapeError struct {
	Field string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("response missing expected field %q", e.Field)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrClientRequired = errors.New("client is required")
)

// IsConfigError checks if the error is a construction-time config error.
func IsConfigError(err error) bool {
	configErr := &ConfigError{}

	return errors.As(err, &configErr)
}

// IsTimeout checks if the error is a request timeout.
func IsTimeout(err error) bool {
	timeoutErr := &TimeoutError{}

	return errors.As(err, &timeoutErr)
}

// IsEmptyReply checks if the error is an empty-reply error.
func IsEmptyReply(err error) bool {
	emptyErr := &EmptyReplyError{}

	return errors.As(err, &emptyErr)
}

// IsMalformedResponse checks if the error is a JSON decode failure.
func IsMalformedResponse(err error) bool {
	malformedErr := &MalformedResponseError{}

	return errors.As(err, &malformedErr)
}

// IsShapeError checks if the error is a missing-envelope-field error.
func IsShapeError(err error) bool {
	shapeErr := &ShapeError{}

	return errors.As(err, &shapeErr)
}

// StatusCode extracts the HTTP status code from an error chain, or 0 if the
// chain contains no HTTPStatusError.
func StatusCode(err error) int {
	statusErr := &HTTPStatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 status error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 status error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsRateLimited checks if the error is a 429 status error.
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}
