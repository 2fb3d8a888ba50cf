package memory

import (
	"context"
	"sync"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// MemUserRepository stores operator accounts in process memory.
type MemUserRepository struct {
	mu         sync.RWMutex
	items      map[string]domain.User
	byUsername map[string]string
}

// NewMemUserRepository creates an empty in-memory user store.
func NewMemUserRepository() portsrepo.UserRepositoryFacade {
	return &MemUserRepository{
		items:      make(map[string]domain.User),
		byUsername: make(map[string]string),
	}
}

func (r *MemUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[user.UserID]; exists {
		return apperrors.ErrDuplicate
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return apperrors.ErrDuplicate
	}
	r.items[user.UserID] = user
	r.byUsername[user.Username] = user.UserID
	return nil
}

func (r *MemUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.items[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	user := r.items[userID]
	return &user, nil
}
