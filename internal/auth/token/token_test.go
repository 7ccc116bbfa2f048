package token_test

import (
	"testing"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/auth/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestManager_IssueAndParse(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := token.NewManager("secret", 24*time.Hour).WithClock(fixedClock(issuedAt))

	raw, err := m.Issue("user-1", "employee")
	require.NoError(t, err)

	claims, err := m.WithClock(fixedClock(issuedAt.Add(23 * time.Hour))).Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "employee", claims.Role)
	assert.Equal(t, issuedAt.Add(24*time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestManager_ParseExpired(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := token.NewManager("secret", 24*time.Hour).WithClock(fixedClock(issuedAt))

	raw, err := m.Issue("user-1", "employee")
	require.NoError(t, err)

	_, err = m.WithClock(fixedClock(issuedAt.Add(25 * time.Hour))).Parse(raw)
	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}

func TestManager_ParseWrongSecret(t *testing.T) {
	raw, err := token.NewManager("secret", time.Hour).Issue("user-1", "admin")
	require.NoError(t, err)

	_, err = token.NewManager("other", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestManager_ParseRejectsOtherAlgorithms(t *testing.T) {
	claims := token.Claims{
		UserID: "user-1",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = token.NewManager("secret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestManager_ParseGarbage(t *testing.T) {
	_, err := token.NewManager("secret", time.Hour).Parse("not.a.jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
