package utils

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("s3cret", time.Hour)

	tok, err := m.Issue(42, "admin")
	require.NoError(t, err)

	id, role, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "admin", role)
}

func TestSessionRejectsForeignTokens(t *testing.T) {
	m := NewSessionManager("s3cret", time.Hour)

	other, err := NewSessionManager("different", time.Hour).Issue(1, "user")
	require.NoError(t, err)
	_, _, err = m.Parse(other)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	s, err := expired.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, _, err = m.Parse(s)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{Role: "user"})
	s, err = noSubject.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, _, err = m.Parse(s)
	assert.Error(t, err)

	_, _, err = m.Parse("not-a-token")
	assert.Error(t, err)
}

func TestSessionDefaultTTL(t *testing.T) {
	assert.Equal(t, 72*time.Hour, NewSessionManager("x", 0).TTL())
}
