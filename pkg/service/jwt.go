package service

import (
	"errors"
	"time"

	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type JwtCustomClaim struct {
	UserID string        `json:"id"`
	Role   entities.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID string, role entities.Role) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetTokenTTL() time.Duration
}

type jwtService struct {
	secretKey string
	tokenTTL  time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewJWTService(secretKey string, tokenTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *jwtService) GenerateToken(userID string, role entities.Role) (string, error) {
	now := s.now()
	claims := &JwtCustomClaim{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) GetTokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenNotFound
	}

	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		s.logger.Debug("ошибка парсинга или проверки подписи токена", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
