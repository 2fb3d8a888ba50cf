package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	"github.com/nuevatoledo/hotel_pms_app/internal/middleware"
	"github.com/nuevatoledo/hotel_pms_app/internal/utils"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// UserService manages front-desk operator accounts.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// Authenticate verifies credentials. It returns ErrUnauthorized for both an
// unknown username and a bad password so callers cannot probe accounts.
func (s *UserService) Authenticate(ctx context.Context, username string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// EnsureSeedUser creates the configured administrator account on startup if
// it does not exist yet.
func (s *UserService) EnsureSeedUser(ctx context.Context, username string, password string) error {
	existing, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check seed user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.New().String(),
		Username:     username,
		Name:         "Administrador",
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save seed user: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Seed user created", slog.String("username", username))
	return nil
}
