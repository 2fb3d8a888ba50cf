package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// MemHousekeepingRepository stores cleaning tasks in process memory.
type MemHousekeepingRepository struct {
	mu    sync.RWMutex
	items map[string]domain.HousekeepingTask
}

// NewMemHousekeepingRepository creates an empty in-memory task store.
func NewMemHousekeepingRepository() portsrepo.HousekeepingRepositoryFacade {
	return &MemHousekeepingRepository{items: make(map[string]domain.HousekeepingTask)}
}

func (r *MemHousekeepingRepository) SaveTask(ctx context.Context, task domain.HousekeepingTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[task.TaskID]; exists {
		return apperrors.ErrDuplicate
	}
	r.items[task.TaskID] = task
	return nil
}

func (r *MemHousekeepingRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.HousekeepingTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.items[taskID]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *MemHousekeepingRepository) UpdateTask(ctx context.Context, task domain.HousekeepingTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[task.TaskID]; !exists {
		return apperrors.ErrNotFound
	}
	r.items[task.TaskID] = task
	return nil
}

func (r *MemHousekeepingRepository) ListTasks(ctx context.Context, status *domain.HousekeepingStatus) ([]domain.HousekeepingTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.HousekeepingTask, 0, len(r.items))
	for _, task := range r.items {
		if status != nil && task.Status != *status {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
