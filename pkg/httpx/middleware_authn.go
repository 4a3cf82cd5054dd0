package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/hirewire/hirewire/pkg/authsdk"
	"github.com/hirewire/hirewire/pkg/jwtx"
	"github.com/hirewire/hirewire/pkg/slogx"
)

// AuthnMiddleware authenticates requests carrying a bearer token.
//
// Every failure mode (missing header, malformed token, bad signature,
// expired) collapses into the same 401 rejection so a caller can't tell a
// forged token from a merely expired one. On success the verified subject
// and claims are attached to the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("token verify failed", "err", err)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeySubject, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant rejection for bearer auth. Only the WWW-Authenticate
// header varies per failure mode; the JSON body is always the uniform
// "unauthenticated" error owned by authsdk.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	authsdk.ErrUnauthenticated.WriteError(w)
}
