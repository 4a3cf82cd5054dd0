package jwtx

// Signer is our interface for anything that can sign access-token claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// NewSignerHS256 creates an HS256 signer from raw secret key material.
// The secret must carry at least 256 bits (32 bytes) of entropy.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256Signer(secret)
}
