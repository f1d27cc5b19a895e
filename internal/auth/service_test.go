package auth

import (
	"testing"
	"time"

	"devflow-backend/internal/config"
	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return &Service{
		cfg: &config.Config{
			JWTSecret:          "test-secret",
			AccessTokenMinutes: 30,
			RefreshTokenDays:   7,
		},
	}
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: 42},
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		IsActive:  true,
		IsAdmin:   true,
	}
}

func TestIssueAndVerifyTokens(t *testing.T) {
	s := testService()
	pair, err := s.issueTokens(testUser())
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(30*60), pair.ExpiresIn)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := s.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Empty(t, claims.TokenType)
}

func TestVerifyRejectsRefreshToken(t *testing.T) {
	s := testService()
	pair, err := s.issueTokens(testUser())
	require.NoError(t, err)

	_, err = s.Verify(pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	s := testService()
	pair, err := s.issueTokens(testUser())
	require.NoError(t, err)

	_, err = s.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	s := testService()
	token, err := s.signToken(testUser(), "", -time.Minute)
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestVerifyGarbageToken(t *testing.T) {
	s := testService()
	_, err := s.Verify("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestDevLoginDisabledOutsideDevelopment(t *testing.T) {
	s := testService()
	s.cfg.Environment = "production"

	_, _, err := s.DevLogin("jdoe@example.com", "devpassword")
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Contains(t, err.Error(), "disabled")
}

func TestDevLoginRejectsWrongPassword(t *testing.T) {
	s := testService()
	s.cfg.Environment = "development"

	_, _, err := s.DevLogin("jdoe@example.com", "hunter2")
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestVerifyWrongSecret(t *testing.T) {
	s := testService()
	pair, err := s.issueTokens(testUser())
	require.NoError(t, err)

	other := testService()
	other.cfg.JWTSecret = "different-secret"
	_, err = other.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
