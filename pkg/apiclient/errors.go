package apiclient

import (
	"fmt"
	"net/http"
)

// APIError represents an error response from the API.
// The server returns failures as {"error": "..."} bodies.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// IsNotFound returns true if this is a not found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRetained returns true if the delete was refused by the retention hold.
func (e *APIError) IsRetained() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsValidationError returns true if the request input was rejected.
func (e *APIError) IsValidationError() bool {
	return e.StatusCode == http.StatusBadRequest
}
