package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
	"github.com/nuevatoledo/hotel_pms_app/internal/middleware"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// RoomService manages the physical room registry and its status machine.
type RoomService struct {
	roomRepo portsrepo.RoomRepositoryFacade
}

func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

func (s *RoomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, apperrors.ErrNotFound
	}
	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	rooms, err := s.roomRepo.ListRooms(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	if rooms == nil {
		return []domain.Room{}, nil
	}
	return rooms, nil
}

func (s *RoomService) AddRoom(ctx context.Context, req dto.AddRoomRequest, creatorUserID string) (*domain.Room, error) {
	existing, err := s.roomRepo.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to check room %s: %w", req.RoomID, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("room %s already exists: %w", req.RoomID, apperrors.ErrDuplicate)
	}

	now := time.Now()
	room := domain.Room{
		RoomID: req.RoomID,
		Floor:  req.Floor,
		Type:   req.Type,
		Status: domain.RoomAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to save room %s: %w", req.RoomID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Room added", slog.String("room_id", room.RoomID))
	return &room, nil
}

func (s *RoomService) ChangeStatus(ctx context.Context, roomID string, status domain.RoomStatus, userID string) (*domain.Room, error) {
	room, err := s.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	// An occupied room cannot be repurposed from underneath a stay.
	if room.Status == domain.RoomOccupied && status != domain.RoomOccupied {
		return nil, fmt.Errorf("room %s is occupied: %w", roomID, apperrors.ErrConflict)
	}
	room.Status = status
	if status == domain.RoomAvailable {
		room.GuestID = ""
	}
	s.touch(room, userID)
	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		return nil, fmt.Errorf("failed to update room %s: %w", roomID, err)
	}
	return room, nil
}

func (s *RoomService) Occupy(ctx context.Context, roomID string, guestID string, userID string) error {
	room, err := s.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status != domain.RoomAvailable {
		return ErrRoomUnavailable
	}
	room.Status = domain.RoomOccupied
	room.GuestID = guestID
	s.touch(room, userID)
	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		return fmt.Errorf("failed to occupy room %s: %w", roomID, err)
	}
	return nil
}

func (s *RoomService) ReleaseToCleaning(ctx context.Context, roomID string, userID string) error {
	room, err := s.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	room.Status = domain.RoomCleaning
	room.GuestID = ""
	s.touch(room, userID)
	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		return fmt.Errorf("failed to release room %s: %w", roomID, err)
	}
	return nil
}

func (s *RoomService) MarkCleaned(ctx context.Context, roomID string, userID string) error {
	room, err := s.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status != domain.RoomCleaning {
		return fmt.Errorf("room %s is not being cleaned: %w", roomID, apperrors.ErrConflict)
	}
	room.Status = domain.RoomAvailable
	s.touch(room, userID)
	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		return fmt.Errorf("failed to mark room %s cleaned: %w", roomID, err)
	}
	return nil
}

func (s *RoomService) FindAvailableByType(ctx context.Context, roomType string) (*domain.Room, error) {
	room, err := s.roomRepo.FindAvailableRoomByType(ctx, roomType)
	if err != nil {
		return nil, fmt.Errorf("failed to find available %s room: %w", roomType, err)
	}
	if room == nil {
		return nil, ErrRoomUnavailable
	}
	return room, nil
}

func (s *RoomService) touch(room *domain.Room, userID string) {
	room.LastUpdatedAt = time.Now()
	room.LastUpdatedBy = userID
}
