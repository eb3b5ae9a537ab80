package domain

import (
	"errors"
	"time"
)

// RoomStatus is the stored nominal status of a physical room. It says
// nothing about occupancy for a given date range; date-scoped availability
// is always computed against bookings, never written back here.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID        int64      `json:"id"`
	Number    string     `json:"number" validate:"required" gorm:"uniqueIndex:idx_room_number_type"`
	Type      string     `json:"type" validate:"required" gorm:"uniqueIndex:idx_room_number_type"`
	Status    RoomStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RoomType is a category of rooms sharing a nightly rate and capacity.
type RoomType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required" gorm:"uniqueIndex"`
	NightlyRate float64   `json:"nightly_rate" validate:"required,gt=0"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrUnknownRoomStatus = errors.New("unknown room status")

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomMaintenance:
		return RoomStatus(s), nil
	}
	return "", ErrUnknownRoomStatus
}
