package token

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techforing/jobboard/internal/errs"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := NewManager([]byte("test-secret"), time.Hour)

	signed, expires, err := m.Issue(42, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
}

func TestVerify_FailsAfterExpiry(t *testing.T) {
	m := NewManager([]byte("test-secret"), time.Hour)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	signed, _, err := m.Issue(1, "a@b.com")
	require.NoError(t, err)

	// Exactly at the expiry instant the token is no longer valid.
	m.now = func() time.Time { return issued.Add(time.Hour) }
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	m := NewManager([]byte("test-secret"), time.Hour)

	signed, _, err := m.Issue(1, "a@b.com")
	require.NoError(t, err)

	// Replace one byte at every position. The substitute always differs in the
	// high bits of its base64 group, so even a segment-final character (whose
	// low bits are unused padding) decodes to different bytes.
	for i := 0; i < len(signed); i++ {
		b := []byte(signed)
		if b[i] >= 'A' && b[i] <= 'P' {
			b[i] = 'z'
		} else {
			b[i] = 'A'
		}
		_, err := m.Verify(string(b))
		if !errors.Is(err, errs.ErrUnauthenticated) {
			t.Fatalf("tampered token at byte %d verified", i)
		}
	}
}

func TestVerify_RejectsMalformedAndForeignTokens(t *testing.T) {
	m := NewManager([]byte("test-secret"), time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c", "x.y"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated, "token %q", tok)
	}

	other := NewManager([]byte("other-secret"), time.Hour)
	signed, _, err := other.Issue(1, "a@b.com")
	require.NoError(t, err)
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}
