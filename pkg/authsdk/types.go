package authsdk

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	// SubjectID is the unique login identifier, an email address.
	SubjectID string `json:"subjectId"`

	// Password is the plaintext credential; it is hashed server-side and
	// never stored or echoed back.
	Password string `json:"password"`

	// DisplayName is the human-facing name; optional, falls back to SubjectID.
	DisplayName string `json:"displayName,omitempty"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	SubjectID string `json:"subjectId"`
	Password  string `json:"password"`
}

// Principal is the public-safe view of an authenticated identity. It never
// carries credential material.
type Principal struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subjectId"`
	DisplayName string `json:"displayName"`
}

// AuthResponse is returned by register and login on success.
type AuthResponse struct {
	Principal   Principal `json:"principal"`
	AccessToken string    `json:"accessToken"`
}

// ErrorResponse is the uniform error body every endpoint returns on failure.
type ErrorResponse struct {
	// Error is the stable machine-readable kind, e.g. "invalid_credentials".
	Error string `json:"error"`

	// Message is a human-readable description. Never contains internals.
	Message string `json:"message"`
}
