package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/dto"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/jwt"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/redis"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles the admin session. The office runs a single admin
// account defined in configuration; there is no user table.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout revokes a token by blacklisting its jti for its remaining
	// lifetime. Without Redis this is a no-op and the token simply ages out.
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type authService struct {
	cfg    *config.Config
	jwtMgr *jwt.Manager
	rdb    *redis.Client // nil when Redis is unavailable
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(cfg *config.Config, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Username != s.cfg.Auth.AdminUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(req.Username)
	if err != nil {
		s.logger.Error("access token generation failed", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(req.Username)
	if err != nil {
		s.logger.Error("refresh token generation failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("token blacklist failed", zap.Error(err))
		return err
	}
	return nil
}
