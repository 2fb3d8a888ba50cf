package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	portsservices "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/services"
	"github.com/nuevatoledo/hotel_pms_app/internal/middleware"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// HousekeepingService manages cleaning tasks. The checkout flow opens a
// departure task automatically; inspecting a task returns the room to the
// available pool.
type HousekeepingService struct {
	taskRepo portsrepo.HousekeepingRepositoryFacade
	roomSvc  portsservices.RoomSvcFacade
}

func NewHousekeepingService(taskRepo portsrepo.HousekeepingRepositoryFacade, roomSvc portsservices.RoomSvcFacade) *HousekeepingService {
	return &HousekeepingService{taskRepo: taskRepo, roomSvc: roomSvc}
}

func (s *HousekeepingService) CreateCheckoutTask(ctx context.Context, roomID string) (*domain.HousekeepingTask, error) {
	task := domain.HousekeepingTask{
		TaskID:    uuid.New().String(),
		RoomID:    roomID,
		Type:      "Limpieza de Salida",
		Priority:  "alta",
		Status:    domain.HKPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create checkout task for room %s: %w", roomID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Checkout cleaning task created",
		slog.String("task_id", task.TaskID), slog.String("room_id", roomID))
	return &task, nil
}

// AdvanceTask moves a task through pending, in progress and inspected.
// Inspection is terminal and releases the room.
func (s *HousekeepingService) AdvanceTask(ctx context.Context, taskID string, userID string) (*domain.HousekeepingTask, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	if task == nil {
		return nil, apperrors.ErrNotFound
	}

	switch task.Status {
	case domain.HKPending:
		task.Status = domain.HKInProgress
		task.Assignee = userID
	case domain.HKInProgress:
		task.Status = domain.HKInspected
	default:
		return nil, fmt.Errorf("task %s is already inspected: %w", taskID, apperrors.ErrConflict)
	}

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}

	if task.Status == domain.HKInspected {
		if err := s.roomSvc.MarkCleaned(ctx, task.RoomID, userID); err != nil {
			return nil, fmt.Errorf("failed to release room %s after inspection: %w", task.RoomID, err)
		}
	}
	return task, nil
}

func (s *HousekeepingService) ListTasks(ctx context.Context, status *domain.HousekeepingStatus) ([]domain.HousekeepingTask, error) {
	tasks, err := s.taskRepo.ListTasks(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		return []domain.HousekeepingTask{}, nil
	}
	return tasks, nil
}
