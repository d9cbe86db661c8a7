package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	s := NewHMACService("secret", "https://id.example.com")

	tok, err := s.IssueToken(Claims{
		Name:             "Jane",
		Picture:          "https://img.example.com/jane.png",
		Email:            "jane@example.com",
		Role:             "admin",
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user|123"},
	}, time.Hour)
	require.NoError(t, err)

	c, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user|123", c.Subject)
	assert.Equal(t, "Jane", c.Name)
	assert.Equal(t, "admin", c.Role)
	assert.Equal(t, "https://id.example.com", c.Issuer)
}

func TestHMACService_Expired(t *testing.T) {
	s := NewHMACService("secret", "")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := s.IssueToken(Claims{RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user|1"}}, time.Hour)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_Rejects(t *testing.T) {
	issuer := NewHMACService("secret", "")
	tok, err := issuer.IssueToken(Claims{RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user|1"}}, time.Hour)
	require.NoError(t, err)

	_, err = NewHMACService("other", "").ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("secret", "https://id.example.com").ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = issuer.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = issuer.IssueToken(Claims{}, time.Hour)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
