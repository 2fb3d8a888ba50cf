package repositories

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// HousekeepingRepositoryFacade defines storage for cleaning tasks.
type HousekeepingRepositoryFacade interface {
	// SaveTask persists a new housekeeping task.
	SaveTask(ctx context.Context, task domain.HousekeepingTask) error

	// FindTaskByID retrieves a task by its identifier.
	FindTaskByID(ctx context.Context, taskID string) (*domain.HousekeepingTask, error)

	// UpdateTask updates an existing task.
	UpdateTask(ctx context.Context, task domain.HousekeepingTask) error

	// ListTasks retrieves all tasks, optionally filtered by status.
	ListTasks(ctx context.Context, status *domain.HousekeepingStatus) ([]domain.HousekeepingTask, error)
}
