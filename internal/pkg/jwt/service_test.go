package jwt

import (
	"testing"
	"time"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestAccessToken_RoundTrip(t *testing.T) {
	now := time.Now()
	s := newTestService(now)
	u := user.User{ID: uuid.New(), Email: "dev@example.com", Role: user.RoleSeeker}

	tok, err := s.GenerateAccessToken(u)
	require.NoError(t, err)

	c, err := s.ValidateAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, c.UserID)
	assert.Equal(t, u.Email, c.Email)
	assert.Equal(t, user.RoleSeeker, c.Role)
	assert.Equal(t, TokenTypeAccess, c.TokenType)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	s := newTestService(time.Now())
	id := uuid.New()

	refresh, err := s.GenerateRefreshToken(id)
	require.NoError(t, err)
	_, err = s.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	access, err := s.GenerateAccessToken(user.User{ID: id, Role: user.RoleEmployer})
	require.NoError(t, err)
	_, err = s.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	c, err := s.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, id, c.UserID)
}

func TestExpiredToken(t *testing.T) {
	issued := time.Now().Add(-time.Hour)
	s := newTestService(issued)
	tok, err := s.GenerateAccessToken(user.User{ID: uuid.New(), Role: user.RoleSeeker})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateAccessToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGarbageToken(t *testing.T) {
	s := newTestService(time.Now())
	_, err := s.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMissingSecret(t *testing.T) {
	s := NewHMACService("", "refresh", time.Minute, time.Minute)
	_, err := s.GenerateAccessToken(user.User{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
