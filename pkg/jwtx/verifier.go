package jwtx

import "errors"

// Verifier validates a token string and gives you back the claims if it's
// legit. Implementations must check the signature before trusting any
// decoded field.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrInvalidSig covers both a bad HMAC and a token signed with a
	// different algorithm; the two are not worth distinguishing to callers.
	ErrInvalidSig = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)
