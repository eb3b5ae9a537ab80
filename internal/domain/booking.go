package domain

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

type BookingSource string

const (
	SourceDashboard BookingSource = "dashboard"
	SourceWebsite   BookingSource = "website"
	SourcePhone     BookingSource = "phone"
	SourceWalkIn    BookingSource = "walk_in"
)

// Booking occupies a room for the half-open interval [CheckIn, CheckOut).
// Two bookings on the same room conflict iff their intervals intersect;
// cancelled bookings never block availability.
type Booking struct {
	ID            int64         `json:"id"`
	RoomID        int64         `json:"room_id" validate:"required"`
	CheckIn       time.Time     `json:"check_in" validate:"required"`
	CheckOut      time.Time     `json:"check_out" validate:"required"`
	Status        BookingStatus `json:"status"`
	GuestName     string        `json:"guest_name" validate:"required"`
	GuestEmail    string        `json:"guest_email" validate:"required,email"`
	GuestPhone    string        `json:"guest_phone" validate:"required"`
	Address       string        `json:"address,omitempty"`
	GovIDNumber   string        `json:"gov_id_number,omitempty"`
	NumGuests     int           `json:"num_guests" validate:"required,gt=0"`
	TotalPrice    float64       `json:"total_price" validate:"gte=0"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	BookingSource BookingSource `json:"booking_source"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Blocking reports whether the booking counts against availability.
func (b *Booking) Blocking() bool {
	return b.Status != BookingCancelled
}

var ErrUnknownBookingStatus = errors.New("unknown booking status")

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingConfirmed, BookingPending, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", ErrUnknownBookingStatus
}
