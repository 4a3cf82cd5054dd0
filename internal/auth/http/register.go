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

// RegisterHandler serves POST /auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrValidationFailed.WriteError(w)
		return
	}

	req.SubjectID = strings.TrimSpace(req.SubjectID)
	if req.SubjectID == "" || req.Password == "" {
		authsdk.ErrValidationFailed.WriteError(w)
		return
	}

	user, token, err := h.AuthService.Register(ctx, req.SubjectID, req.Password, strings.TrimSpace(req.DisplayName))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyExists):
			authsdk.ErrAlreadyExists.WriteError(w)
		default:
			log.Error("register failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	log.Info("user registered", "subject", user.SubjectID)

	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		Principal: authsdk.Principal{
			ID:          user.ID,
			SubjectID:   user.SubjectID,
			DisplayName: user.DisplayName,
		},
		AccessToken: token,
	})
}
