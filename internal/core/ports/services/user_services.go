package services

import (
	"context"
	"time"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// UserSvcFacade manages front-desk operator accounts.
type UserSvcFacade interface {
	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)

	// EnsureSeedUser creates the configured administrator account if it
	// does not exist yet.
	EnsureSeedUser(ctx context.Context, username string, password string) error
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
