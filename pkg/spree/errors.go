package spree

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the Spree API.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"status_code" yaml:"status_code"`
	// Detail is the human-readable error message reported by the server,
	// when the body carried one.
	Detail string `json:"detail" yaml:"detail"`
	// Errors holds per-field validation messages for 422 responses.
	Errors map[string][]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	// Body is the raw response body for caller inspection.
	Body []byte `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (status: %d)", e.Detail, e.StatusCode)
	}

	if len(e.Body) > 0 {
		return fmt.Sprintf("spree: request failed with status %d: %s", e.StatusCode, string(e.Body))
	}

	return fmt.Sprintf("spree: request failed with status %d", e.StatusCode)
}

// responseBody is the shape Spree uses for error payloads.
type responseBody struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
}

// NewAPIError builds an APIError from a response status and body. The body is
// parsed best-effort; an unparseable body is kept raw and not treated as a
// failure in its own right.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var parsed responseBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Detail = parsed.Error
		apiErr.Errors = parsed.Errors
	}

	return apiErr
}

// Common static errors that can be wrapped with context.
var (
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrTokenRequired    = errors.New("API token is required")
	ErrAmbiguousVariant = errors.New("variant lookup did not match exactly one variant")
	ErrNoMoreItems      = errors.New("no more items")
	ErrNoMorePages      = errors.New("no more pages")
	ErrPageIncomplete   = errors.New("page has fewer items than the reported count")
	ErrConfigRequired   = errors.New("config is required")
)

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 response, which Spree returns
// for missing or invalid tokens.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsUnprocessable checks if the error is a 422 validation failure.
func IsUnprocessable(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnprocessableEntity
	}

	return false
}
