package handler

import (
	"net/http"

	"github.com/techforing/jobboard/internal/middleware"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	user, err := h.auth.Register(r.Context(), in.Email, in.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and establishes the cookie session
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	signed, expires, err := h.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.setSessionCookie(w, signed, expires)
	writeJSON(w, http.StatusOK, map[string]string{"message": "login successful"})
}

// Logout clears the session cookie. Tokens are stateless, so the captured
// token stays valid until expiry; the server only tells the client to
// discard it.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the authenticated user, without the password hash
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	user, err := h.auth.CurrentUser(r.Context(), identity.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Home serves the gated browser entry point
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "welcome back",
		"email":   identity.Email,
	})
}
