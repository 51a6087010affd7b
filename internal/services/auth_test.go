package services

import (
	"context"
	"testing"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	"smart-gmao/internal/repositories"
	"smart-gmao/pkg/config"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T, active bool) (AuthServiceInterface, *entities.User) {
	t.Helper()
	users := repositories.NewMemoryUserRepository()
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	admin, err := users.CreateUser(context.Background(), &entities.User{
		LastName:  "Derradji",
		FirstName: "Imad",
		Email:     "admin@smartgmao.com",
		Password:  hash,
		Role:      entities.RoleAdmin,
	})
	require.NoError(t, err)
	if !active {
		admin, err = users.SetUserActive(context.Background(), admin.ID, false)
		require.NoError(t, err)
	}

	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}
	svc := NewAuthService(users, repositories.NewMemoryCacheRepository(), zap.NewNop(), cfg)
	return svc, admin
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, admin := newAuthFixture(t, true)

	user, err := svc.Login(ctx, dto.LoginDTO{Email: " ADMIN@smartgmao.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "admin@smartgmao.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "nobody@smartgmao.com", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_LockoutAfterFailedAttempts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t, true)
	bad := dto.LoginDTO{Email: "admin@smartgmao.com", Password: "wrong"}

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, bad)
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// даже верный пароль отклоняется, пока действует блокировка
	_, err := svc.Login(ctx, dto.LoginDTO{Email: "admin@smartgmao.com", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)
	assert.Equal(t, 429, apperrors.StatusCode(err))
}

func TestAuthService_SuccessResetsAttempts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t, true)
	bad := dto.LoginDTO{Email: "admin@smartgmao.com", Password: "wrong"}
	good := dto.LoginDTO{Email: "admin@smartgmao.com", Password: "admin123"}

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(ctx, bad)
	}
	_, err := svc.Login(ctx, good)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, _ = svc.Login(ctx, bad)
	}
	_, err = svc.Login(ctx, good)
	assert.NoError(t, err)
}

func TestAuthService_InactiveUser(t *testing.T) {
	svc, _ := newAuthFixture(t, false)
	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "admin@smartgmao.com", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_RegisterDisabled(t *testing.T) {
	svc, _ := newAuthFixture(t, true)
	err := svc.Register(context.Background(), dto.RegisterDTO{Email: "new@smartgmao.com"})
	assert.ErrorIs(t, err, apperrors.ErrRegistrationDisabled)
}
