package services

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// HousekeepingSvcFacade manages cleaning tasks.
type HousekeepingSvcFacade interface {
	// CreateCheckoutTask opens a high-priority departure-cleaning task for
	// the room.
	CreateCheckoutTask(ctx context.Context, roomID string) (*domain.HousekeepingTask, error)

	// AdvanceTask moves a task to its next state; on inspection the room
	// returns to the available pool.
	AdvanceTask(ctx context.Context, taskID string, userID string) (*domain.HousekeepingTask, error)

	// ListTasks retrieves tasks, optionally filtered by status.
	ListTasks(ctx context.Context, status *domain.HousekeepingStatus) ([]domain.HousekeepingTask, error)
}
