package booking

import (
	"time"

	"hotelsite/internal/domain"
	"hotelsite/internal/modules/availability"
	"hotelsite/internal/pkg/dates"
)

// FormState is the explicit workflow position of a booking form. The
// transitions only move forward through confirmation; any date edit drops
// straight back to FormDatesUnconfirmed.
type FormState string

const (
	FormDatesUnconfirmed FormState = "dates_unconfirmed"
	FormDatesConfirming  FormState = "dates_confirming"
	FormDatesConfirmed   FormState = "dates_confirmed"
	FormRoomTypeSet      FormState = "room_type_set"
	FormRoomSet          FormState = "room_set"
)

type GuestDetails struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	GovIDNumber string `json:"gov_id_number"`
	NumGuests   int    `json:"num_guests"`
}

func (g GuestDetails) complete() bool {
	return g.Name != "" && g.Email != "" && g.Phone != "" && g.NumGuests > 0
}

// Form is the booking-form state machine. A room cannot be selected until
// availability for the exact chosen dates has been confirmed, and the total
// price is always derived, never entered.
type Form struct {
	state FormState

	// editingID is the booking being edited, 0 for a new booking.
	editingID int64
	// editingRoomID is the room the edited booking occupies. It is fixed
	// for the life of the session: every re-confirmation uses it to put
	// the booking's own room back among the candidates.
	editingRoomID int64
	// heldRoomID survives from an edited booking until a room type is
	// picked; it is cleared if it is no longer an available candidate.
	heldRoomID int64

	checkIn  time.Time
	checkOut time.Time

	snapshot    []availability.RoomTypeAvailability
	roomType    string
	nightlyRate float64
	candidates  []domain.Room
	roomID      int64

	guest  GuestDetails
	notes  string
	source domain.BookingSource
	status domain.BookingStatus
}

func NewForm() *Form {
	return &Form{
		state:  FormDatesUnconfirmed,
		source: domain.SourceDashboard,
		status: domain.BookingConfirmed,
	}
}

// NewFormWithDates pre-fills a calendar range selection. The caller is
// expected to confirm immediately (the auto-advance entry mode).
func NewFormWithDates(checkIn, checkOut time.Time) *Form {
	f := NewForm()
	f.checkIn = dates.Day(checkIn)
	f.checkOut = dates.Day(checkOut)
	return f
}

// NewEditForm pre-fills the form from an existing booking. The booking's
// room is held, not selected: it must survive re-confirmation of the dates
// before it can be kept.
func NewEditForm(b *domain.Booking) *Form {
	f := NewForm()
	f.editingID = b.ID
	f.editingRoomID = b.RoomID
	f.heldRoomID = b.RoomID
	f.checkIn = dates.Day(b.CheckIn)
	f.checkOut = dates.Day(b.CheckOut)
	f.guest = GuestDetails{
		Name:        b.GuestName,
		Email:       b.GuestEmail,
		Phone:       b.GuestPhone,
		Address:     b.Address,
		GovIDNumber: b.GovIDNumber,
		NumGuests:   b.NumGuests,
	}
	f.notes = b.Notes
	f.source = b.BookingSource
	f.status = b.Status
	return f
}

func (f *Form) State() FormState { return f.state }
func (f *Form) EditingID() int64 { return f.editingID }

// SetDates records a manual date edit. Whatever was previously confirmed or
// selected is invalidated: availability snapshot, room type and room are all
// cleared and the machine returns to FormDatesUnconfirmed.
func (f *Form) SetDates(checkIn, checkOut time.Time) error {
	checkIn = dates.Day(checkIn)
	checkOut = dates.Day(checkOut)

	if !checkOut.After(checkIn) {
		return ErrInvalidRange
	}
	if checkIn.Before(dates.Day(time.Now().UTC())) {
		return ErrDateInPast
	}

	f.checkIn = checkIn
	f.checkOut = checkOut
	f.reset()
	return nil
}

// reset clears everything a date edit invalidates. A held room id from an
// edited booking is kept: it is only ever applied by SelectRoomType, which
// re-validates it against the fresh candidate list.
func (f *Form) reset() {
	f.state = FormDatesUnconfirmed
	f.snapshot = nil
	f.roomType = ""
	f.nightlyRate = 0
	f.candidates = nil
	f.roomID = 0
}

// BeginConfirm marks the availability lookup as in flight.
func (f *Form) BeginConfirm() error {
	if f.checkIn.IsZero() || f.checkOut.IsZero() {
		return ErrValidation
	}
	if !f.checkOut.After(f.checkIn) {
		return ErrInvalidRange
	}
	f.state = FormDatesConfirming
	return nil
}

// CompleteConfirm stores the resolver result for the exact confirmed range.
func (f *Form) CompleteConfirm(snapshot []availability.RoomTypeAvailability) {
	f.snapshot = snapshot
	f.state = FormDatesConfirmed
}

// FailConfirm drops back to unconfirmed; no partial availability is trusted.
func (f *Form) FailConfirm() {
	f.snapshot = nil
	f.state = FormDatesUnconfirmed
}

// SelectRoomType populates the candidate room list from the confirmed
// snapshot. A held room id (edit mode) that is not among the candidates is
// cleared, forcing an explicit re-pick.
func (f *Form) SelectRoomType(name string) error {
	switch f.state {
	case FormDatesConfirmed, FormRoomTypeSet, FormRoomSet:
	default:
		return ErrDatesNotConfirmed
	}

	var entry *availability.RoomTypeAvailability
	for i := range f.snapshot {
		if f.snapshot[i].Type == name {
			entry = &f.snapshot[i]
			break
		}
	}
	if entry == nil {
		return ErrUnknownRoomType
	}

	f.roomType = entry.Type
	f.nightlyRate = entry.NightlyRate
	f.candidates = entry.AvailableRooms
	f.roomID = 0
	f.state = FormRoomTypeSet

	held := f.heldRoomID
	f.heldRoomID = 0
	if held != 0 && f.isCandidate(held) {
		f.roomID = held
		f.state = FormRoomSet
	}
	return nil
}

// SelectRoom picks one candidate room.
func (f *Form) SelectRoom(roomID int64) error {
	switch f.state {
	case FormRoomTypeSet, FormRoomSet:
	default:
		return ErrDatesNotConfirmed
	}
	if !f.isCandidate(roomID) {
		return ErrRoomNotCandidate
	}
	f.roomID = roomID
	f.state = FormRoomSet
	return nil
}

func (f *Form) isCandidate(roomID int64) bool {
	for _, r := range f.candidates {
		if r.ID == roomID {
			return true
		}
	}
	return false
}

func (f *Form) SetGuest(g GuestDetails) { f.guest = g }
func (f *Form) SetNotes(notes string)   { f.notes = notes }

func (f *Form) SetSource(s domain.BookingSource) { f.source = s }

// SetStatus overrides the default "confirmed" submission status.
func (f *Form) SetStatus(s domain.BookingStatus) { f.status = s }

// Nights for the currently chosen range.
func (f *Form) Nights() int {
	return dates.Nights(f.checkIn, f.checkOut)
}

// TotalPrice is always nights x nightly rate, never entered directly.
func (f *Form) TotalPrice() float64 {
	return float64(f.Nights()) * f.nightlyRate
}

// Submittable reports whether everything needed to persist is present:
// confirmed dates, a selected room, the guest identity and a positive
// nightly rate.
func (f *Form) Submittable() bool {
	return f.state == FormRoomSet &&
		f.roomID != 0 &&
		f.guest.complete() &&
		f.nightlyRate > 0 &&
		f.Nights() > 0
}

// Build assembles the booking payload from the machine state. Callers must
// have checked Submittable.
func (f *Form) Build() *domain.Booking {
	return &domain.Booking{
		ID:            f.editingID,
		RoomID:        f.roomID,
		CheckIn:       f.checkIn,
		CheckOut:      f.checkOut,
		Status:        f.status,
		GuestName:     f.guest.Name,
		GuestEmail:    f.guest.Email,
		GuestPhone:    f.guest.Phone,
		Address:       f.guest.Address,
		GovIDNumber:   f.guest.GovIDNumber,
		NumGuests:     f.guest.NumGuests,
		TotalPrice:    f.TotalPrice(),
		Notes:         f.notes,
		BookingSource: f.source,
	}
}
