package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/interfaces/http/rest/middleware"
	"catalog-admin/pkg/common"
	pkgerrors "catalog-admin/pkg/errors"
)

// CookieConfig controls the session cookie set on login.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler handles the credentials login flow
type AuthHandler struct {
	auth   ports.AuthService
	cookie CookieConfig
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth ports.AuthService, cookie CookieConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie, logger: logger}
}

type tokenRequest struct {
	Token string `json:"token"`
}

type emailRequest struct {
	Email string `json:"email"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req ports.LoginInput
	if err := decodeLenient(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	session, err := h.auth.Login(r.Context(), req)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	respond(w, r, h.logger, http.StatusOK, common.OK(session).WithMessage("Login successful"))
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	respond(w, r, h.logger, http.StatusOK, common.OK(nil).WithMessage("Signed out"))
}

// VerifyToken handles POST /api/auth/verify-token. The token comes from the body,
// or from the Authorization header or session cookie when the body has none.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if r.ContentLength != 0 {
		if err := decode(w, r, &req); err != nil {
			respondError(w, r, h.logger, err)
			return
		}
	}
	if req.Token == "" {
		req.Token = middleware.ExtractToken(r, h.cookie.Name)
	}

	claims, err := h.auth.VerifyToken(r.Context(), req.Token)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(map[string]interface{}{
		"valid":     true,
		"userId":    claims.UserID,
		"email":     claims.Email,
		"name":      claims.Name,
		"role":      claims.Role(),
		"roles":     claims.Roles,
		"expiresAt": expiresAt,
	}))
}

// GetUser handles POST /api/auth/get-user
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if req.Email == "" {
		respondError(w, r, h.logger, pkgerrors.NewValidationError("email is required"))
		return
	}

	user, err := h.auth.GetUser(r.Context(), req.Email)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(user))
}
