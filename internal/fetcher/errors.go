package fetcher

import (
	"fmt"
)

// ErrorType represents the category of failure observed on the final attempt
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeTimeout indicates the request timed out
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeHTTP indicates the endpoint answered with a non-success status
	ErrorTypeHTTP ErrorType = "http"
	// ErrorTypeDecode indicates the response body could not be decoded as JSON
	ErrorTypeDecode ErrorType = "decode"
)

// FetchError is returned once every attempt has been exhausted. It carries the
// last observed failure; earlier attempts are only visible in the retry log.
type FetchError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error (%s, status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch error (%s): %s", e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error
func NewNetworkError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeNetwork,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeTimeout,
		Message: "request timed out",
		Cause:   cause,
	}
}

// NewHTTPError creates an error for a non-success HTTP status
func NewHTTPError(statusCode int) *FetchError {
	return &FetchError{
		Type:       ErrorTypeHTTP,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("endpoint returned HTTP %d", statusCode),
	}
}

// NewDecodeError creates an error for an undecodable response body
func NewDecodeError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeDecode,
		Message: "response body is not valid JSON",
		Cause:   cause,
	}
}
