package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// authService issues and checks the bearer tokens guarding the
// administrative HTTP surface.
type authService struct {
	issuer   string
	signKey  string
	duration time.Duration
	logger   *logger.Logger
}

// NewAuthService constructs an [AuthService] from the application config.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		issuer:   cfg.TokenIssuer,
		signKey:  cfg.TokenSignKey,
		duration: cfg.TokenDuration,
		logger:   logger,
	}
}

// CreateToken implements [AuthService].
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.issuer, user.UserID, s.duration, s.signKey)
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}
