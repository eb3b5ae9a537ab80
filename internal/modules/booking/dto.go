package booking

import (
	"hotelsite/internal/domain"
	"hotelsite/internal/modules/availability"
)

type StartFormRequest struct {
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	BookingID int64  `json:"booking_id"`
}

type SetDatesRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type SelectRoomTypeRequest struct {
	Type string `json:"type" binding:"required"`
}

type SelectRoomRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
}

type GuestDetailsRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address"`
	GovIDNumber string `json:"gov_id_number"`
	NumGuests   int    `json:"num_guests" validate:"required,gt=0"`
	Notes       string `json:"notes"`
	Source      string `json:"source"`
	Status      string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FormView is the serialized state of one form session.
type FormView struct {
	SessionID   string                              `json:"session_id"`
	State       FormState                           `json:"state"`
	EditingID   int64                               `json:"editing_id,omitempty"`
	CheckIn     string                              `json:"check_in,omitempty"`
	CheckOut    string                              `json:"check_out,omitempty"`
	RoomTypes   []availability.RoomTypeAvailability `json:"room_types,omitempty"`
	RoomType    string                              `json:"room_type,omitempty"`
	Candidates  []domain.Room                       `json:"candidate_rooms,omitempty"`
	RoomID      int64                               `json:"room_id,omitempty"`
	NightlyRate float64                             `json:"nightly_rate,omitempty"`
	Nights      int                                 `json:"nights,omitempty"`
	TotalPrice  float64                             `json:"total_price,omitempty"`
	Guest       GuestDetails                        `json:"guest"`
	Submittable bool                                `json:"submittable"`
}

func formView(sessionID string, f *Form) *FormView {
	v := &FormView{
		SessionID:   sessionID,
		State:       f.state,
		EditingID:   f.editingID,
		RoomTypes:   f.snapshot,
		RoomType:    f.roomType,
		Candidates:  f.candidates,
		RoomID:      f.roomID,
		NightlyRate: f.nightlyRate,
		Guest:       f.guest,
		Submittable: f.Submittable(),
	}
	if !f.checkIn.IsZero() {
		v.CheckIn = f.checkIn.Format("2006-01-02")
	}
	if !f.checkOut.IsZero() {
		v.CheckOut = f.checkOut.Format("2006-01-02")
	}
	if !f.checkIn.IsZero() && !f.checkOut.IsZero() && f.Nights() > 0 {
		v.Nights = f.Nights()
		v.TotalPrice = f.TotalPrice()
	}
	return v
}
