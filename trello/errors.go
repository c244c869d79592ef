package trello

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client or URL configuration
	ErrInvalidConfig = errors.New("invalid trello configuration")
	// ErrInvalidID indicates a caller-supplied identifier failed validation
	ErrInvalidID = errors.New("invalid trello object id")
	// ErrTransport indicates the request never produced an HTTP response
	ErrTransport = errors.New("trello transport failure")
	// ErrRateLimitExhausted indicates the API kept answering 429 past the retry ceiling
	ErrRateLimitExhausted = errors.New("trello rate limit retries exhausted")
)

// ConfigurationError reports missing or malformed configuration, such as an
// absent API key or a URL template whose placeholders do not match its params.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("trello configuration error: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationError reports an identifier that failed format validation
type ValidationError struct {
	Value  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid object id %q: %s", e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidID
func (e *ValidationError) Unwrap() error {
	return ErrInvalidID
}

// TransportError wraps a connection or IO failure
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("trello %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport so callers can classify without a type assertion
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError represents a Trello API error response. It is only returned when
// the client runs with strict errors; otherwise the failure is logged and the
// call yields an absent result.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("trello API error: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// RateLimitError is returned once a request has been answered with 429 more
// times than the client is configured to retry.
type RateLimitError struct {
	Method   string
	URL      string
	Attempts int
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("trello %s %s: still rate limited after %d attempts", e.Method, e.URL, e.Attempts)
}

// Unwrap lets errors.Is match ErrRateLimitExhausted
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimitExhausted
}
