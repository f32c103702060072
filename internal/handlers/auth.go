package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cx-tal-miterani/flightsim-portal/internal/identity"
	"github.com/cx-tal-miterani/flightsim-portal/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// SessionView is the signed-in user as returned to the browser. The session
// id only travels in the cookie.
type SessionView struct {
	DisplayName string            `json:"displayName"`
	Email       string            `json:"email"`
	Provider    identity.Provider `json:"provider"`
	ExpiresAt   time.Time         `json:"expiresAt"`
}

func sessionView(s *session.Session) SessionView {
	return SessionView{
		DisplayName: s.DisplayName,
		Email:       s.Email,
		Provider:    s.Provider,
		ExpiresAt:   s.ExpiresAt,
	}
}

// SignUp handles POST /api/auth/signup
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req identity.SignUp
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.auth.SignUp(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.setSessionCookie(w, sess)
	respondJSON(w, http.StatusCreated, sessionView(sess))
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.setSessionCookie(w, sess)
	respondJSON(w, http.StatusOK, sessionView(sess))
}

// GoogleLogin handles POST /api/auth/google
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := decodeJSON(r, &req); err != nil || req.IDToken == "" {
		respondError(w, http.StatusBadRequest, "id_token is required")
		return
	}

	sess, err := h.auth.LoginWithGoogle(r.Context(), req.IDToken)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.setSessionCookie(w, sess)
	respondJSON(w, http.StatusOK, sessionView(sess))
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if id := session.IDFromRequest(r); id != "" {
		if err := h.auth.Logout(r.Context(), id); err != nil {
			h.logger.Warn("failed to delete session", zap.Error(err))
		}
	}
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id := session.IDFromRequest(r)
	if id == "" {
		respondError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	sess, err := h.auth.Current(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, sessionView(sess))
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, s *session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
