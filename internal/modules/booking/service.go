package booking

import (
	"context"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"hotelsite/internal/domain"
	"hotelsite/internal/modules/availability"
	"hotelsite/internal/pkg/dates"
)

// Service drives booking-form sessions and owns booking persistence. The
// form machine enforces the workflow; the service is the authoritative
// availability check at submission time, never trusting client state.
type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	resolver AvailabilityResolver
	notifs   InventoryNotifier
	sessions *sessionStore
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	resolver AvailabilityResolver,
	notifs InventoryNotifier,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		resolver: resolver,
		notifs:   notifs,
		sessions: newSessionStore(sessionTTL),
	}
}

/* ---------- FORM WORKFLOW ---------- */

// StartForm opens a form session. Three entry modes: blank, calendar range
// (dates supplied), or edit of an existing booking. With dates present the
// machine auto-advances: availability is resolved for the exact range
// before the view is returned.
func (s *Service) StartForm(ctx context.Context, req StartFormRequest) (*FormView, error) {
	var form *Form

	switch {
	case req.BookingID != 0:
		b, err := s.bookings.GetByID(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		form = NewEditForm(b)
	case req.CheckIn != "" && req.CheckOut != "":
		checkIn, err := time.Parse("2006-01-02", req.CheckIn)
		if err != nil {
			return nil, ErrValidation
		}
		checkOut, err := time.Parse("2006-01-02", req.CheckOut)
		if err != nil {
			return nil, ErrValidation
		}
		if !checkOut.After(checkIn) {
			return nil, ErrInvalidRange
		}
		form = NewFormWithDates(checkIn, checkOut)
	default:
		form = NewForm()
	}

	id := s.sessions.Create(form)

	if !form.checkIn.IsZero() && !form.checkOut.IsZero() {
		if _, err := s.ConfirmDates(ctx, id); err != nil {
			s.sessions.Delete(id)
			return nil, err
		}
	}
	return formViewFor(s, id)
}

func formViewFor(s *Service, id string) (*FormView, error) {
	var view *FormView
	err := s.sessions.Do(id, func(f *Form) error {
		view = formView(id, f)
		return nil
	})
	return view, err
}

// SetDates applies a manual date edit (state machine rule: this always
// invalidates confirmed availability and any selected room).
func (s *Service) SetDates(ctx context.Context, sessionID string, req SetDatesRequest) (*FormView, error) {
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}

	var view *FormView
	err = s.sessions.Do(sessionID, func(f *Form) error {
		if err := f.SetDates(checkIn, checkOut); err != nil {
			return err
		}
		view = formView(sessionID, f)
		return nil
	})
	return view, err
}

// ConfirmDates runs the availability resolver for the session's exact
// range. On resolver failure the machine stays unconfirmed.
func (s *Service) ConfirmDates(ctx context.Context, sessionID string) (*FormView, error) {
	var view *FormView
	err := s.sessions.Do(sessionID, func(f *Form) error {
		if err := f.BeginConfirm(); err != nil {
			return err
		}

		snapshot, err := s.resolver.ResolveRange(ctx, f.checkIn, f.checkOut)
		if err != nil {
			f.FailConfirm()
			return err
		}

		if f.editingID != 0 {
			snapshot, err = s.readmitOwnRoom(ctx, f, snapshot)
			if err != nil {
				f.FailConfirm()
				return err
			}
		}

		f.CompleteConfirm(snapshot)
		view = formView(sessionID, f)
		return nil
	})
	return view, err
}

// readmitOwnRoom compensates for the resolver counting the edited booking's
// own stay as occupancy: if that room's only conflict in the range is the
// booking being edited, it is put back among the available candidates. Keyed
// on the session's fixed editingRoomID so it works on every re-confirmation,
// not just the first.
func (s *Service) readmitOwnRoom(ctx context.Context, f *Form, snapshot []availability.RoomTypeAvailability) ([]availability.RoomTypeAvailability, error) {
	if f.editingRoomID == 0 {
		return snapshot, nil
	}

	cnt, err := s.bookings.CountConflicts(ctx, f.editingRoomID, f.checkIn, f.checkOut, f.editingID)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return snapshot, nil
	}

	room, err := s.rooms.GetByID(ctx, f.editingRoomID)
	if err != nil {
		return nil, err
	}

	for i := range snapshot {
		if snapshot[i].Type != room.Type {
			continue
		}
		for _, r := range snapshot[i].AvailableRooms {
			if r.ID == room.ID {
				return snapshot, nil // already free for the new range
			}
		}
		snapshot[i].AvailableCount++
		snapshot[i].AvailableRooms = append(snapshot[i].AvailableRooms, *room)
		break
	}
	return snapshot, nil
}

func (s *Service) SelectRoomType(ctx context.Context, sessionID string, req SelectRoomTypeRequest) (*FormView, error) {
	var view *FormView
	err := s.sessions.Do(sessionID, func(f *Form) error {
		if err := f.SelectRoomType(req.Type); err != nil {
			return err
		}
		view = formView(sessionID, f)
		return nil
	})
	return view, err
}

func (s *Service) SelectRoom(ctx context.Context, sessionID string, req SelectRoomRequest) (*FormView, error) {
	var view *FormView
	err := s.sessions.Do(sessionID, func(f *Form) error {
		if err := f.SelectRoom(req.RoomID); err != nil {
			return err
		}
		view = formView(sessionID, f)
		return nil
	})
	return view, err
}

func (s *Service) SetGuestDetails(ctx context.Context, sessionID string, req GuestDetailsRequest) (*FormView, error) {
	var view *FormView
	err := s.sessions.Do(sessionID, func(f *Form) error {
		f.SetGuest(GuestDetails{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			GovIDNumber: req.GovIDNumber,
			NumGuests:   req.NumGuests,
		})
		f.SetNotes(req.Notes)
		if req.Source != "" {
			f.SetSource(domain.BookingSource(req.Source))
		}
		if req.Status != "" {
			status, err := domain.ParseBookingStatus(req.Status)
			if err != nil {
				return ErrValidation
			}
			f.SetStatus(status)
		}
		view = formView(sessionID, f)
		return nil
	})
	return view, err
}

/* ---------- SUBMISSION ---------- */

// Submit persists the assembled booking all-or-nothing. Availability is
// re-verified here server-side: the form's confirmed snapshot is treated as
// stale the moment it was taken.
func (s *Service) Submit(ctx context.Context, sessionID string) (*domain.Booking, error) {
	var b *domain.Booking
	err := s.sessions.Do(sessionID, func(f *Form) error {
		if !f.Submittable() {
			return ErrNotSubmittable
		}

		cnt, err := s.bookings.CountConflicts(ctx, f.roomID, f.checkIn, f.checkOut, f.editingID)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRoomConflict
		}

		b = f.Build()
		b.TotalPrice = math.Round(b.TotalPrice*100) / 100

		if f.editingID != 0 {
			err = s.bookings.Update(ctx, b)
		} else {
			err = s.bookings.Create(ctx, b)
		}
		if err != nil {
			return mapConstraintError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sessions.Delete(sessionID)

	if s.notifs != nil {
		s.notifs.InventoryChanged(b.ID)
	}
	return b, nil
}

// mapConstraintError turns a PostgreSQL no-overlap constraint rejection
// into the conflict sentinel. 23P01 is exclusion_violation (the gist
// EXCLUDE), 23505 unique_violation.
func mapConstraintError(err error) error {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		if pgErr.Code == "23P01" || pgErr.Code == "23505" {
			return ErrRoomConflict
		}
	}
	return err
}

/* ---------- BOOKING CRUD ---------- */

func (s *Service) GetBookings(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// UpdateStatus changes a booking's status. Cancelling frees the room for
// overlapping queries immediately, so the inventory feed is notified.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.InventoryChanged(id)
	}
	return s.bookings.GetByID(ctx, id)
}

// DeleteBooking removes a booking outright. The dashboard gates this behind
// an operator confirmation; cancellation is the usual path.
func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.InventoryChanged(id)
	}
	return nil
}

// VerifyNoConflict re-checks one room/range pair against the store.
func (s *Service) VerifyNoConflict(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrInvalidRange
	}
	cnt, err := s.bookings.CountConflicts(ctx, roomID, dates.Day(checkIn), dates.Day(checkOut), 0)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}
