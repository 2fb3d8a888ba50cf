package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nuevatoledo/hotel_pms_app/internal/utils"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// TokenService issues signed JWTs for authenticated users.
type TokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

func NewTokenService(secret string, expiry time.Duration, issuer string) *TokenService {
	return &TokenService{secret: secret, expiry: expiry, issuer: issuer}
}

func (s *TokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}
