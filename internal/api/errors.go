package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates the request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")

	// ErrTimeout indicates the request timed out
	ErrTimeout = errors.New("request timed out")

	// ErrNoResults indicates the response did not carry the expected records
	ErrNoResults = errors.New("no results found")
)

// APIError represents a non-200 reply from the iRail API
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error %d: %s (endpoint: %s)", e.StatusCode, e.Status, e.Endpoint)
}

// Is implements errors.Is for APIError
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode == 400
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

// NewAPIErrorWithMessage creates a new API error with a custom message
func NewAPIErrorWithMessage(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// RequestError is a failure to reach the API: connection refused, DNS,
// timeout or cancellation.
type RequestError struct {
	URL     string
	Err     error
	Timeout bool
}

func (e *RequestError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is matches ErrTimeout for timed out requests
func (e *RequestError) Is(target error) bool {
	return target == ErrTimeout && e.Timeout
}

// DecodeError is a response body that could not be turned into JSON:
// unknown charset, undecodable bytes or malformed JSON.
type DecodeError struct {
	URL     string
	Charset string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Charset != "" {
		return fmt.Sprintf("failed to decode response from %s (charset %s): %v", e.URL, e.Charset, e.Err)
	}
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// LookupError is a decoded response lacking an expected key
type LookupError struct {
	Endpoint string
	Key      string
}

func (e *LookupError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("%s response has no %q key", e.Endpoint, e.Key)
	}
	return fmt.Sprintf("response has no %q key", e.Key)
}

// Is matches ErrNoResults
func (e *LookupError) Is(target error) bool {
	return target == ErrNoResults
}
