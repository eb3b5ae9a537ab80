package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelsite/internal/domain"
	"hotelsite/internal/modules/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountConflicts(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (int64, error) {
	args := m.Called(ctx, roomID, start, end, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveRange(ctx context.Context, checkIn, checkOut time.Time) ([]availability.RoomTypeAvailability, error) {
	args := m.Called(ctx, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.RoomTypeAvailability), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) InventoryChanged(bookingID int64) {
	m.Called(bookingID)
}

func newTestService(bookings *MockBookingRepository, rooms *MockRoomRepository, resolver *MockResolver, notifs *MockNotifier) *Service {
	return NewService(bookings, rooms, resolver, notifs, time.Minute)
}

func driveToSubmittable(t *testing.T, s *Service, resolver *MockResolver) string {
	t.Helper()

	checkIn := date(2027, 6, 10)
	checkOut := date(2027, 6, 13)
	resolver.On("ResolveRange", mock.Anything, checkIn, checkOut).Return(deluxeSnapshot(), nil)

	view, err := s.StartForm(context.Background(), StartFormRequest{
		CheckIn:  "2027-06-10",
		CheckOut: "2027-06-13",
	})
	require.NoError(t, err)
	require.Equal(t, FormDatesConfirmed, view.State)

	id := view.SessionID
	_, err = s.SelectRoomType(context.Background(), id, SelectRoomTypeRequest{Type: "Deluxe"})
	require.NoError(t, err)
	_, err = s.SelectRoom(context.Background(), id, SelectRoomRequest{RoomID: 3})
	require.NoError(t, err)
	view, err = s.SetGuestDetails(context.Background(), id, GuestDetailsRequest{
		Name:      "Alan Turing",
		Email:     "alan@example.com",
		Phone:     "+44 1234 567890",
		NumGuests: 2,
	})
	require.NoError(t, err)
	require.True(t, view.Submittable)
	return id
}

func TestSubmit_CreatesConfirmedBookingWithDerivedPrice(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	resolver := new(MockResolver)
	notifs := new(MockNotifier)
	s := newTestService(bookings, rooms, resolver, notifs)

	id := driveToSubmittable(t, s, resolver)

	bookings.On("CountConflicts", mock.Anything, int64(3), date(2027, 6, 10), date(2027, 6, 13), int64(0)).
		Return(int64(0), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("InventoryChanged", int64(999)).Return()

	b, err := s.Submit(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, int64(3), b.RoomID)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, 6000.0, b.TotalPrice)
	notifs.AssertCalled(t, "InventoryChanged", int64(999))

	// the session is consumed on successful submission
	_, err = s.Submit(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmit_ReverifiesAvailabilityServerSide(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	resolver := new(MockResolver)
	notifs := new(MockNotifier)
	s := newTestService(bookings, rooms, resolver, notifs)

	id := driveToSubmittable(t, s, resolver)

	// another session grabbed the room after the form confirmed its dates
	bookings.On("CountConflicts", mock.Anything, int64(3), date(2027, 6, 10), date(2027, 6, 13), int64(0)).
		Return(int64(1), nil)

	_, err := s.Submit(context.Background(), id)

	assert.ErrorIs(t, err, ErrRoomConflict)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifs.AssertNotCalled(t, "InventoryChanged", mock.Anything)
}

func TestSubmit_IncompleteFormRejected(t *testing.T) {
	bookings := new(MockBookingRepository)
	resolver := new(MockResolver)
	s := newTestService(bookings, new(MockRoomRepository), resolver, nil)

	checkIn := date(2027, 6, 10)
	checkOut := date(2027, 6, 13)
	resolver.On("ResolveRange", mock.Anything, checkIn, checkOut).Return(deluxeSnapshot(), nil)

	view, err := s.StartForm(context.Background(), StartFormRequest{
		CheckIn: "2027-06-10", CheckOut: "2027-06-13",
	})
	require.NoError(t, err)

	_, err = s.Submit(context.Background(), view.SessionID)
	assert.ErrorIs(t, err, ErrNotSubmittable)
}

func TestStartForm_AutoConfirmFailureSurfaced(t *testing.T) {
	bookings := new(MockBookingRepository)
	resolver := new(MockResolver)
	s := newTestService(bookings, new(MockRoomRepository), resolver, nil)

	resolver.On("ResolveRange", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("store down"))

	_, err := s.StartForm(context.Background(), StartFormRequest{
		CheckIn: "2027-06-10", CheckOut: "2027-06-13",
	})
	assert.Error(t, err)
}

func TestSetDates_InvalidatesConfirmedAvailability(t *testing.T) {
	bookings := new(MockBookingRepository)
	resolver := new(MockResolver)
	s := newTestService(bookings, new(MockRoomRepository), resolver, nil)

	id := driveToSubmittable(t, s, resolver)

	view, err := s.SetDates(context.Background(), id, SetDatesRequest{
		CheckIn: "2027-06-11", CheckOut: "2027-06-14",
	})

	require.NoError(t, err)
	assert.Equal(t, FormDatesUnconfirmed, view.State)
	assert.Zero(t, view.RoomID)
	assert.Empty(t, view.RoomTypes)
	assert.False(t, view.Submittable)
}

func TestStartForm_EditReadmitsOwnRoom(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	resolver := new(MockResolver)
	s := newTestService(bookings, rooms, resolver, nil)

	existing := &domain.Booking{
		ID:         41,
		RoomID:     1,
		CheckIn:    date(2027, 6, 10),
		CheckOut:   date(2027, 6, 13),
		Status:     domain.BookingConfirmed,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		GuestPhone: "+44 207 946 0000",
		NumGuests:  1,
	}
	bookings.On("GetByID", mock.Anything, int64(41)).Return(existing, nil)

	// the resolver sees D1 occupied (by booking 41 itself)
	resolver.On("ResolveRange", mock.Anything, date(2027, 6, 10), date(2027, 6, 13)).
		Return(deluxeSnapshot(), nil)
	// ...but excluding booking 41 there is no conflict on D1
	bookings.On("CountConflicts", mock.Anything, int64(1), date(2027, 6, 10), date(2027, 6, 13), int64(41)).
		Return(int64(0), nil)
	rooms.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Room{ID: 1, Number: "D1", Type: "Deluxe"}, nil)

	view, err := s.StartForm(context.Background(), StartFormRequest{BookingID: 41})
	require.NoError(t, err)

	_, err = s.SelectRoomType(context.Background(), view.SessionID, SelectRoomTypeRequest{Type: "Deluxe"})
	require.NoError(t, err)

	got, err := formViewFor(s, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, FormRoomSet, got.State)
	assert.Equal(t, int64(1), got.RoomID, "the booking's own room stays selectable")
	assert.True(t, got.Submittable)
}

func TestStartForm_EditDateChangeStillReadmitsOwnRoom(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	resolver := new(MockResolver)
	s := newTestService(bookings, rooms, resolver, nil)

	existing := &domain.Booking{
		ID:         41,
		RoomID:     1,
		CheckIn:    date(2027, 6, 10),
		CheckOut:   date(2027, 6, 13),
		Status:     domain.BookingConfirmed,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		GuestPhone: "+44 207 946 0000",
		NumGuests:  1,
	}
	bookings.On("GetByID", mock.Anything, int64(41)).Return(existing, nil)

	// D1 is occupied by booking 41 itself in every resolver snapshot
	resolver.On("ResolveRange", mock.Anything, mock.Anything, mock.Anything).
		Return(deluxeSnapshot(), nil)
	bookings.On("CountConflicts", mock.Anything, int64(1), mock.Anything, mock.Anything, int64(41)).
		Return(int64(0), nil)
	rooms.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Room{ID: 1, Number: "D1", Type: "Deluxe"}, nil)

	view, err := s.StartForm(context.Background(), StartFormRequest{BookingID: 41})
	require.NoError(t, err)
	id := view.SessionID

	_, err = s.SelectRoomType(context.Background(), id, SelectRoomTypeRequest{Type: "Deluxe"})
	require.NoError(t, err)

	// shift the stay one day, forcing a fresh confirmation
	_, err = s.SetDates(context.Background(), id, SetDatesRequest{
		CheckIn:  "2027-06-11",
		CheckOut: "2027-06-14",
	})
	require.NoError(t, err)
	_, err = s.ConfirmDates(context.Background(), id)
	require.NoError(t, err)

	got, err := s.SelectRoomType(context.Background(), id, SelectRoomTypeRequest{Type: "Deluxe"})
	require.NoError(t, err)

	ids := make([]int64, 0, len(got.Candidates))
	for _, r := range got.Candidates {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, int64(1), "the booking's own room survives a date change")

	_, err = s.SelectRoom(context.Background(), id, SelectRoomRequest{RoomID: 1})
	assert.NoError(t, err)
}

func TestUpdateStatus_CancellationNotifiesInventory(t *testing.T) {
	bookings := new(MockBookingRepository)
	notifs := new(MockNotifier)
	s := newTestService(bookings, new(MockRoomRepository), new(MockResolver), notifs)

	bookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingCancelled).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, Status: domain.BookingCancelled,
	}, nil)
	notifs.On("InventoryChanged", int64(7)).Return()

	b, err := s.UpdateStatus(context.Background(), 7, domain.BookingCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	notifs.AssertCalled(t, "InventoryChanged", int64(7))
}

func TestDeleteBooking_NotifiesInventory(t *testing.T) {
	bookings := new(MockBookingRepository)
	notifs := new(MockNotifier)
	s := newTestService(bookings, new(MockRoomRepository), new(MockResolver), notifs)

	bookings.On("Delete", mock.Anything, int64(7)).Return(nil)
	notifs.On("InventoryChanged", int64(7)).Return()

	require.NoError(t, s.DeleteBooking(context.Background(), 7))
	notifs.AssertExpectations(t)
}
