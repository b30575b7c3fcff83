// Package handler contains the thin HTTP layer: decode, delegate, respond.
package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techforing/jobboard/internal/service"
)

// Handler holds the services behind the HTTP surface
type Handler struct {
	auth    *service.AuthService
	catalog *service.CatalogService
	log     *logrus.Logger

	cookieName   string
	secureCookie bool
}

// NewHandler initializes the HTTP handlers
func NewHandler(auth *service.AuthService, catalog *service.CatalogService, log *logrus.Logger, cookieName string, secureCookie bool) *Handler {
	return &Handler{
		auth:         auth,
		catalog:      catalog,
		log:          log,
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookie,
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookie,
		MaxAge:   -1,
	})
}
