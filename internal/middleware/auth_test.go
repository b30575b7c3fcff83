package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techforing/jobboard/internal/token"
)

const cookieName = "token"

func gatedHandler(t *testing.T, tokens *token.Manager, opts Options) (http.Handler, *Identity) {
	t.Helper()
	var seen Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		require.True(t, ok, "admitted request must carry an identity")
		seen = id
		w.WriteHeader(http.StatusOK)
	})
	return Session(tokens, opts)(next), &seen
}

func TestSession_DeniesMissingToken(t *testing.T) {
	tokens := token.NewManager([]byte("k"), time.Hour)
	h, _ := gatedHandler(t, tokens, Options{CookieName: cookieName})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthenticated"}`, rec.Body.String())
}

func TestSession_DeniesInvalidTokenSameAsMissing(t *testing.T) {
	tokens := token.NewManager([]byte("k"), time.Hour)
	h, _ := gatedHandler(t, tokens, Options{CookieName: cookieName})

	missing := httptest.NewRecorder()
	h.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/me", nil))

	invalid := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-token"})
	h.ServeHTTP(invalid, req)

	assert.Equal(t, missing.Code, invalid.Code)
	assert.Equal(t, missing.Body.String(), invalid.Body.String())
}

func TestSession_AdmitsValidCookie(t *testing.T) {
	tokens := token.NewManager([]byte("k"), time.Hour)
	h, seen := gatedHandler(t, tokens, Options{CookieName: cookieName})

	signed, _, err := tokens.Issue(7, "a@b.com")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: signed})
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 7, seen.UserID)
	assert.Equal(t, "a@b.com", seen.Email)
}

func TestSession_BearerHeaderTakesPrecedenceOverCookie(t *testing.T) {
	tokens := token.NewManager([]byte("k"), time.Hour)
	h, seen := gatedHandler(t, tokens, Options{CookieName: cookieName})

	headerTok, _, err := tokens.Issue(1, "header@b.com")
	require.NoError(t, err)
	cookieTok, _, err := tokens.Issue(2, "cookie@b.com")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+headerTok)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieTok})
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "header@b.com", seen.Email)

	// A bad header is not rescued by a good cookie.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieTok})
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_RedirectModeDenies(t *testing.T) {
	tokens := token.NewManager([]byte("k"), time.Hour)
	h, _ := gatedHandler(t, tokens, Options{CookieName: cookieName, RedirectURL: "/login"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSession_DeniesExpiredToken(t *testing.T) {
	tokens := token.NewManager([]byte("k"), time.Nanosecond)
	h, _ := gatedHandler(t, tokens, Options{CookieName: cookieName})

	signed, _, err := tokens.Issue(1, "a@b.com")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: signed})
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
