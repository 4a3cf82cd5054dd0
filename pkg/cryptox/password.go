package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the caller passes a cost
// of zero. 12 is a reasonable interactive-login cost in 2026; bump it as
// hardware catches up.
const DefaultCost = 12

// ErrMismatch reports that a password does not match its stored hash. A
// malformed stored hash is reported the same way so callers can't tell the
// two apart.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a salted bcrypt digest of password. The salt is
// generated fresh on every call, so hashing the same password twice yields
// different strings. Cost is clamped into bcrypt's supported range.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), normalizeCost(cost))
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword recomputes the digest using the salt and cost embedded in
// encodedHash and compares it against the stored digest in constant time.
// It returns ErrMismatch for a wrong password and for a stored hash that
// isn't valid bcrypt output; it never panics on malformed input.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		// Collapse mismatch and malformed-hash into one error so the
		// distinction can't leak to a caller's caller.
		return ErrMismatch
	}
	return nil
}

func normalizeCost(cost int) int {
	switch {
	case cost <= 0:
		return DefaultCost
	case cost < bcrypt.MinCost:
		return bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	default:
		return cost
	}
}
