package catalog

import (
	"context"
	"errors"
	"time"

	"hotelsite/internal/domain"
	"hotelsite/internal/repository"
)

var (
	ErrRoomHasBookings   = errors.New("room has future bookings")
	ErrTypeHasRooms      = errors.New("room type still has rooms")
	ErrInvalidRoomStatus = errors.New("invalid room status")
)

// BookingReader is the slice of the booking store the catalog needs to
// guard destructive operations.
type BookingReader interface {
	HasFutureBookings(ctx context.Context, roomID int64, now time.Time) (bool, error)
}

type Service struct {
	roomRepo     *repository.RoomRepository
	roomTypeRepo *repository.RoomTypeRepository
	bookings     BookingReader
}

func NewService(
	roomRepo *repository.RoomRepository,
	roomTypeRepo *repository.RoomTypeRepository,
	bookings BookingReader,
) *Service {
	return &Service{roomRepo, roomTypeRepo, bookings}
}

/* ---------- ROOM TYPES ---------- */

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	t := &domain.RoomType{
		Name:        req.Name,
		NightlyRate: req.NightlyRate,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if err := s.roomTypeRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateRoomType(ctx context.Context, id int64, req UpdateRoomTypeRequest) (*domain.RoomType, error) {
	t, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.NightlyRate != nil && *req.NightlyRate > 0 {
		t.NightlyRate = *req.NightlyRate
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		t.Capacity = *req.Capacity
	}
	if req.Description != nil {
		t.Description = *req.Description
	}

	if err := s.roomTypeRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypeRepo.GetAll(ctx)
}

func (s *Service) DeleteRoomType(ctx context.Context, id int64) error {
	t, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	rooms, err := s.roomRepo.GetByType(ctx, t.Name)
	if err != nil {
		return err
	}
	if len(rooms) > 0 {
		return ErrTypeHasRooms
	}

	return s.roomTypeRepo.Delete(ctx, id)
}

/* ---------- ROOMS ---------- */

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	// the type must exist so the room always has a nightly rate behind it
	if _, err := s.roomTypeRepo.GetByName(ctx, req.Type); err != nil {
		return nil, err
	}

	room := &domain.Room{
		Number: req.Number,
		Type:   req.Type,
		Status: domain.RoomAvailable,
	}
	if req.Status != "" {
		status, err := domain.ParseRoomStatus(req.Status)
		if err != nil {
			return nil, ErrInvalidRoomStatus
		}
		room.Status = status
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Type != nil {
		if _, err := s.roomTypeRepo.GetByName(ctx, *req.Type); err != nil {
			return nil, err
		}
		room.Type = *req.Type
	}
	if req.Status != nil {
		status, err := domain.ParseRoomStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidRoomStatus
		}
		room.Status = status
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRooms(ctx context.Context) ([]domain.Room, error) {
	return s.roomRepo.GetAll(ctx)
}

// DeleteRoom refuses to delete a room that future non-cancelled bookings
// still reference.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	busy, err := s.bookings.HasFutureBookings(ctx, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if busy {
		return ErrRoomHasBookings
	}
	return s.roomRepo.Delete(ctx, id)
}
