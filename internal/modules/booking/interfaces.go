package booking

import (
	"context"
	"time"

	"hotelsite/internal/domain"
	"hotelsite/internal/modules/availability"
)

// BookingRepository is the write/read surface over the booking store.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	CountConflicts(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityResolver is the authoritative free/occupied computation.
type AvailabilityResolver interface {
	ResolveRange(ctx context.Context, checkIn, checkOut time.Time) ([]availability.RoomTypeAvailability, error)
}

// InventoryNotifier is told after every booking write so open dashboard
// views refetch occupancy immediately. Skipping the notification would let
// a stale "available" room invite a double-booking.
type InventoryNotifier interface {
	InventoryChanged(bookingID int64)
}
