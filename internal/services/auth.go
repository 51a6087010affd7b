// Файл: internal/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	"smart-gmao/internal/repositories"
	"smart-gmao/pkg/config"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error)
	Register(ctx context.Context, payload dto.RegisterDTO) error
	GetUserByID(ctx context.Context, userID string) (*entities.User, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.logger.Info("Login: пользователь не найден", zap.String("email", entities.NormalizeEmail(payload.Email)))
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := s.checkLockout(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.logger.Error("Login: повреждённый хеш пароля", zap.String("userID", user.ID), zap.Error(err))
			return nil, err
		}
		s.handleFailedLoginAttempt(ctx, user.ID)
		return nil, err
	}
	if !user.IsActive {
		s.logger.Warn("Login: учётная запись отключена", zap.String("userID", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}
	s.resetLoginAttempts(ctx, user.ID)
	s.logger.Info("Login: успешный вход", zap.String("userID", user.ID))
	return user, nil
}

// Register временно отключена: единственная учётная запись создаётся сидером.
func (s *AuthService) Register(_ context.Context, payload dto.RegisterDTO) error {
	s.logger.Info("Register: попытка регистрации", zap.String("email", entities.NormalizeEmail(payload.Email)))
	return apperrors.ErrRegistrationDisabled
}

func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("GetUserByID: не удалось найти пользователя", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID string) error {
	lockoutKey := fmt.Sprintf("lockout:%s", userID)

	// Если ключ существует, аккаунт заблокирован
	if _, err := s.cacheRepo.Get(ctx, lockoutKey); err == nil {
		s.logger.Warn("Login: аккаунт заблокирован", zap.String("userID", userID))
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID string) {
	attemptsKey := fmt.Sprintf("login_attempts:%s", userID)
	attempts, err := s.cacheRepo.IncrWithTTL(ctx, attemptsKey, s.cfg.LockoutDuration)
	if err != nil {
		s.logger.Error("не удалось учесть неудачную попытку входа", zap.String("userID", userID), zap.Error(err))
		return
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf("lockout:%s", userID)
		if err := s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration); err != nil {
			s.logger.Error("не удалось заблокировать аккаунт", zap.String("userID", userID), zap.Error(err))
		}
		_ = s.cacheRepo.Del(ctx, attemptsKey)
		s.logger.Warn("аккаунт заблокирован после неудачных попыток входа",
			zap.String("userID", userID),
			zap.Duration("duration", s.cfg.LockoutDuration),
		)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID string) {
	attemptsKey := fmt.Sprintf("login_attempts:%s", userID)
	lockoutKey := fmt.Sprintf("lockout:%s", userID)
	_ = s.cacheRepo.Del(ctx, attemptsKey, lockoutKey)
}

