// Package middleware contains the session gate applied to protected routes.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/techforing/jobboard/internal/token"
)

type ctxKey int

const identityKey ctxKey = iota

// Identity is the decoded user identity attached to admitted requests.
type Identity struct {
	UserID int64
	Email  string
}

// Options configures how the session gate extracts tokens and manifests a deny.
type Options struct {
	// CookieName is the session cookie consulted when no Bearer header is present.
	CookieName string
	// RedirectURL, when non-empty, turns a deny into a redirect for browser
	// navigation routes instead of a JSON 401.
	RedirectURL string
}

// Session returns middleware that admits requests carrying a valid session
// token and rejects everything else. A missing token and an invalid or
// expired one produce the same external signal.
func Session(tokens *token.Manager, opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				if c, err := r.Cookie(opts.CookieName); err == nil {
					raw = c.Value
				}
			}
			if raw == "" {
				deny(w, r, opts)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				deny(w, r, opts)
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				deny(w, r, opts)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, Identity{
				UserID: userID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom extracts the admitted identity from a request context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// bearerToken returns the token from an Authorization: Bearer header, if any.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}

func deny(w http.ResponseWriter, r *http.Request, opts Options) {
	if opts.RedirectURL != "" {
		http.Redirect(w, r, opts.RedirectURL, http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthenticated"})
}
