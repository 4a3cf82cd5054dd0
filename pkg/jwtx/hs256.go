package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen is the minimum accepted HMAC secret length in bytes.
// 32 bytes gives the full 256 bits of security HS256 can offer.
const MinSecretLen = 32

// HS256Signer implements the Signer interface using HMAC-SHA256 with a
// shared server-held secret.
type HS256Signer struct {
	secret []byte
	alg    string
}

func newHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("jwtx: HS256 secret too short: got %d bytes, need %d", len(secret), MinSecretLen)
	}

	return &HS256Signer{
		secret: secret,
		alg:    jwt.SigningMethodHS256.Alg(),
	}, nil
}

func (s *HS256Signer) Alg() string { return s.alg }

// Sign takes your claims and turns them into a signed compact token string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check to make sure we actually have a usable key.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinSecretLen {
		return errors.New("jwtx: HS256 secret missing or too short")
	}
	return nil
}

// HS256Verifier validates tokens signed with HS256.
//
// Verification order matters: the HMAC signature is checked before any
// decoded claim is looked at, so a tampered token is rejected without its
// fields ever being trusted. The underlying library compares HMACs in
// constant time.
type HS256Verifier struct {
	secret []byte
	issuer string
}

// NewVerifierHS256 creates a verifier sharing the signer's secret.
// If issuer is non-empty, verified tokens must carry it in "iss".
func NewVerifierHS256(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer}
}

// Verify validates the token string and returns its parsed Claims.
//
// Claim validation is deliberately disabled inside the parser; expiry is
// checked explicitly after the signature so the failure classification is
// ours: ErrMalformed for undecodable input, ErrInvalidSig for a bad
// signature, then ErrIssuer / ErrExpired / ErrNotYetValid for claim
// failures on an authentic token.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Claims{}, ErrMalformed
	}

	// Signature is good from here on; only now do we trust the fields.
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		// Unexpected library failure; treat as malformed rather than
		// surfacing parser internals.
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
