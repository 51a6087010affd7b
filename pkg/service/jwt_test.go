package service

import (
	"testing"
	"time"

	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 30*24*time.Hour, zap.NewNop())

	token, err := svc.GenerateToken("user-1", entities.RoleTechnician)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entities.RoleTechnician, claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, zap.NewNop()).(*jwtService)
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("user-1", entities.RoleAdmin)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, zap.NewNop())
	other := NewJWTService("other-secret", time.Hour, zap.NewNop())

	foreign, err := other.GenerateToken("user-1", entities.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &JwtCustomClaim{UserID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(unsigned)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
