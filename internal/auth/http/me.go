package http

import (
	"errors"
	"net/http"

	"github.com/hirewire/hirewire/internal/auth/service"
	"github.com/hirewire/hirewire/internal/auth/store"
	"github.com/hirewire/hirewire/pkg/authsdk"
	"github.com/hirewire/hirewire/pkg/httpx"
	"github.com/hirewire/hirewire/pkg/slogx"
)

// MeHandler serves GET /auth/me. It resolves the principal behind the
// verified bearer token; AuthnMiddleware has already attached the subject.
type MeHandler struct {
	UserService *service.UserService
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	subject := httpx.SubjectFromContext(ctx)
	if subject == "" {
		authsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	user, err := h.UserService.GetBySubjectID(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token outlived the record; still a valid token, but there
			// is no principal to return.
			authsdk.ErrUnauthenticated.WriteError(w)
			return
		}
		log.Error("userinfo lookup failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.Principal{
		ID:          user.ID,
		SubjectID:   user.SubjectID,
		DisplayName: user.DisplayName,
	})
}
