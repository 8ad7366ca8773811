package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	issuedAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("segredo", 24*time.Hour)
	tm.now = func() time.Time { return issuedAt }

	token, expiresAt, err := tm.Issue(entities.SessionUser{ID: 1, Name: "Admin", Role: entities.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), expiresAt)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestTokenManager_ClaimNames(t *testing.T) {
	tm := NewTokenManager("segredo", time.Hour)

	token, _, err := tm.Issue(entities.SessionUser{ID: 999, Role: entities.RoleUser})
	require.NoError(t, err)

	mapClaims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, mapClaims)
	require.NoError(t, err)

	assert.EqualValues(t, 999, mapClaims["user_id"])
	assert.Equal(t, "user", mapClaims["role"])
	assert.Contains(t, mapClaims, "exp")
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("segredo", time.Hour).Issue(entities.SessionUser{ID: 2, Role: entities.RoleUser})
	require.NoError(t, err)

	_, err = NewTokenManager("outro", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("segredo", time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := tm.Issue(entities.SessionUser{ID: 2, Role: entities.RoleUser})
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_HS256Header(t *testing.T) {
	token, _, err := NewTokenManager("segredo", time.Hour).Issue(entities.SessionUser{ID: 1, Role: entities.RoleAdmin})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Header["alg"])
}
