package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable error kinds exposed on the wire.
const (
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeAlreadyExists      = "already_exists"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeServerError        = "server_error"
)

// APIError is the externally visible error shape. It implements the error
// interface and is used both by the server (to write HTTP responses) and by
// the SDK client (to represent parsed errors).
type APIError struct {
	// StatusCode is the HTTP status for this error.
	StatusCode int `json:"-"`

	// Code is the stable error kind, e.g. "invalid_credentials".
	Code string `json:"error"`

	// Message is a human-readable description. It must never include
	// internals such as hash material, key material or stack traces.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer. This is the
// single place internal failures become external responses.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   e.Code,
		Message: e.Message,
	})
}

var (
	// ErrInvalidCredentials is returned for a bad subject/password pair.
	// It is also returned for a nonexistent subject so callers can't probe
	// which accounts exist.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid credentials",
	}

	// ErrUnauthenticated is returned for a missing, invalid or expired
	// access token. Forged and expired tokens are deliberately
	// indistinguishable.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "missing, invalid or expired access token",
	}

	// ErrAlreadyExists is returned when registering a subject that is
	// already taken.
	ErrAlreadyExists = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeAlreadyExists,
		Message:    "an account with this subject already exists",
	}

	// ErrValidationFailed is returned for a malformed or incomplete
	// request body.
	ErrValidationFailed = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidationFailed,
		Message:    "the request body is malformed or missing required fields",
	}

	// ErrServerError is returned for unexpected failures. The message is
	// intentionally generic.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for success responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
