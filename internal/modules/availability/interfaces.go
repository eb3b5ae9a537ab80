package availability

import (
	"context"
	"time"

	"hotelsite/internal/domain"
)

// RoomRepository provides the room inventory reads the resolver needs.
type RoomRepository interface {
	GetAll(ctx context.Context) ([]domain.Room, error)
}

// RoomTypeRepository provides the room-type catalog.
type RoomTypeRepository interface {
	GetAll(ctx context.Context) ([]domain.RoomType, error)
}

// BookingRepository provides the occupancy source of truth.
type BookingRepository interface {
	GetOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
}
