package handlers

import (
	"net/http"

	"github.com/lunaroj/auth-service/internal/models"
	"github.com/lunaroj/auth-service/internal/transport/http/apierrors"
	"github.com/lunaroj/auth-service/internal/transport/http/middleware"
)

type registerRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email,omitempty"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       int64  `json:"user_id,omitempty"`
}

type captchaResponse struct {
	CaptchaID string `json:"captcha_id"`
	Image     string `json:"image"`
}

func tokensFromModel(t *models.AuthTokens, userID int64) tokensResponse {
	return tokensResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		ExpiresIn:    t.ExpiresIn,
		UserID:       userID,
	}
}

// Register — POST /api/auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	tokens, userID, err := h.Service.RegisterUser(r.Context(), in.Username, in.Password, in.Email, in.CaptchaID, in.CaptchaAnswer)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokensFromModel(tokens, userID))
}

// Login — POST /api/auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	tokens, userID, err := h.Service.LoginUser(r.Context(), in.Username, in.Password, in.CaptchaID, in.CaptchaAnswer)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokensFromModel(tokens, userID))
}

// Refresh — POST /api/auth/refresh.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil || in.RefreshToken == "" {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	tokens, err := h.Service.RefreshTokens(r.Context(), in.RefreshToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokensFromModel(tokens, 0))
}

// Logout — POST /api/auth/logout.
// Access-токен берётся из Authorization, refresh — из тела.
// Операция идемпотентна и успешна даже для уже отозванных токенов,
// поэтому тело с ошибкой разбора не считается отказом.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var in logoutRequest
	_ = decodeStrict(r, &in)

	accessToken, _ := middleware.BearerFrom(r.Context())

	if err := h.Service.Logout(r.Context(), accessToken, in.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Captcha — GET /api/auth/captcha.
func (h *Handlers) GetCaptcha(w http.ResponseWriter, r *http.Request) {
	id, image, err := h.Captcha.Generate()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, captchaResponse{CaptchaID: id, Image: image})
}
