package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hirewire/hirewire/internal/auth/service"
	"github.com/hirewire/hirewire/pkg/authsdk"
	"github.com/hirewire/hirewire/pkg/httpx"
	"github.com/hirewire/hirewire/pkg/slogx"
)

// LoginHandler serves POST /auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrValidationFailed.WriteError(w)
		return
	}

	req.SubjectID = strings.TrimSpace(req.SubjectID)
	if req.SubjectID == "" || req.Password == "" {
		authsdk.ErrValidationFailed.WriteError(w)
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.SubjectID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrInvalidCredentials):
			// One opaque rejection for both, so login can't be used to
			// enumerate accounts.
			authsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		Principal: authsdk.Principal{
			ID:          user.ID,
			SubjectID:   user.SubjectID,
			DisplayName: user.DisplayName,
		},
		AccessToken: token,
	})
}
