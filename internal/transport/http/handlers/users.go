package handlers

import (
	"net/http"
	"time"

	"github.com/lunaroj/auth-service/internal/transport/http/apierrors"
	"github.com/lunaroj/auth-service/internal/transport/http/middleware"
)

type userResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Nickname    string `json:"nickname"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role"`
	LastLoginAt string `json:"last_login_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Me — GET /api/users/me.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	user, err := h.Service.UserByID(r.Context(), identity.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
	if user.LastLoginAt != nil {
		out.LastLoginAt = user.LastLoginAt.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, out)
}

// ChangePassword — PATCH /api/users/me/password.
// После успешной смены все refresh-сессии пользователя отозваны,
// текущий access-токен в чёрном списке: клиенту нужно войти заново.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	var in changePasswordRequest
	if err := decodeStrict(r, &in); err != nil || in.NewPassword == "" {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	accessToken, _ := middleware.BearerFrom(r.Context())

	if err := h.Service.ChangePassword(r.Context(), identity.UserID, in.OldPassword, in.NewPassword, accessToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
