package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockRoomTypeRepository struct {
	mock.Mock
}

func (m *MockRoomTypeRepository) GetAll(ctx context.Context) ([]domain.RoomType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func deluxeFixtures() ([]domain.Room, []domain.RoomType) {
	rooms := []domain.Room{
		{ID: 1, Number: "D1", Type: "Deluxe", Status: domain.RoomAvailable},
		{ID: 2, Number: "D2", Type: "Deluxe", Status: domain.RoomAvailable},
		{ID: 3, Number: "D3", Type: "Deluxe", Status: domain.RoomAvailable},
		{ID: 4, Number: "S1", Type: "Standard", Status: domain.RoomAvailable},
	}
	types := []domain.RoomType{
		{ID: 1, Name: "Deluxe", NightlyRate: 2000, Capacity: 2},
		{ID: 2, Name: "Standard", NightlyRate: 1200, Capacity: 2},
	}
	return rooms, types
}

func TestResolveRange_OccupiedRoomExcluded(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockTypes := new(MockRoomTypeRepository)
	mockBookings := new(MockBookingRepository)

	rooms, types := deluxeFixtures()
	checkIn := date(2025, 6, 10)
	checkOut := date(2025, 6, 12)

	mockRooms.On("GetAll", mock.Anything).Return(rooms, nil)
	mockTypes.On("GetAll", mock.Anything).Return(types, nil)
	mockBookings.On("GetOverlapping", mock.Anything, checkIn, checkOut).Return([]domain.Booking{
		{ID: 77, RoomID: 1, CheckIn: checkIn, CheckOut: checkOut, Status: domain.BookingConfirmed},
	}, nil)

	service := NewService(mockRooms, mockTypes, mockBookings)
	result, err := service.ResolveRange(context.Background(), checkIn, checkOut)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	deluxe := result[0]
	assert.Equal(t, "Deluxe", deluxe.Type)
	assert.Equal(t, 3, deluxe.TotalCount)
	assert.Equal(t, 2, deluxe.AvailableCount)
	assert.Equal(t, "D2", deluxe.AvailableRooms[0].Number)
	assert.Equal(t, "D3", deluxe.AvailableRooms[1].Number)
}

func TestResolveRange_BackToBackStayDoesNotBlock(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockTypes := new(MockRoomTypeRepository)
	mockBookings := new(MockBookingRepository)

	rooms, types := deluxeFixtures()
	checkIn := date(2025, 6, 12)
	checkOut := date(2025, 6, 14)

	mockRooms.On("GetAll", mock.Anything).Return(rooms, nil)
	mockTypes.On("GetAll", mock.Anything).Return(types, nil)
	// the store-side predicate would not return a stay ending exactly on
	// check-in day; an empty result is what a correct query yields
	mockBookings.On("GetOverlapping", mock.Anything, checkIn, checkOut).Return([]domain.Booking{}, nil)

	service := NewService(mockRooms, mockTypes, mockBookings)
	result, err := service.ResolveRange(context.Background(), checkIn, checkOut)

	assert.NoError(t, err)
	assert.Equal(t, 3, result[0].AvailableCount)
}

func TestResolveRange_CancelledBookingDoesNotBlock(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockTypes := new(MockRoomTypeRepository)
	mockBookings := new(MockBookingRepository)

	rooms, types := deluxeFixtures()
	checkIn := date(2025, 6, 10)
	checkOut := date(2025, 6, 12)

	mockRooms.On("GetAll", mock.Anything).Return(rooms, nil)
	mockTypes.On("GetAll", mock.Anything).Return(types, nil)
	mockBookings.On("GetOverlapping", mock.Anything, checkIn, checkOut).Return([]domain.Booking{
		{ID: 5, RoomID: 1, CheckIn: checkIn, CheckOut: checkOut, Status: domain.BookingCancelled},
	}, nil)

	service := NewService(mockRooms, mockTypes, mockBookings)
	result, err := service.ResolveRange(context.Background(), checkIn, checkOut)

	assert.NoError(t, err)
	assert.Equal(t, 3, result[0].AvailableCount)
}

func TestResolveRange_ZeroAvailabilityTypeStillPresent(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockTypes := new(MockRoomTypeRepository)
	mockBookings := new(MockBookingRepository)

	checkIn := date(2025, 6, 10)
	checkOut := date(2025, 6, 12)

	rooms := []domain.Room{
		{ID: 1, Number: "S1", Type: "Suite", Status: domain.RoomAvailable},
	}
	types := []domain.RoomType{
		{ID: 1, Name: "Suite", NightlyRate: 5000, Capacity: 4},
		{ID: 2, Name: "Standard", NightlyRate: 1200, Capacity: 2}, // no rooms yet
	}

	mockRooms.On("GetAll", mock.Anything).Return(rooms, nil)
	mockTypes.On("GetAll", mock.Anything).Return(types, nil)
	mockBookings.On("GetOverlapping", mock.Anything, checkIn, checkOut).Return([]domain.Booking{
		{ID: 9, RoomID: 1, CheckIn: date(2025, 6, 11), CheckOut: date(2025, 6, 13), Status: domain.BookingConfirmed},
	}, nil)

	service := NewService(mockRooms, mockTypes, mockBookings)
	result, err := service.ResolveRange(context.Background(), checkIn, checkOut)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	standard, suite := result[0], result[1]
	assert.Equal(t, "Standard", standard.Type)
	assert.Equal(t, 0, standard.TotalCount)
	assert.Equal(t, 0, standard.AvailableCount)

	assert.Equal(t, "Suite", suite.Type)
	assert.Equal(t, 1, suite.TotalCount)
	assert.Equal(t, 0, suite.AvailableCount)
	assert.Empty(t, suite.AvailableRooms)
}

func TestResolveRange_InvalidRange(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockRoomTypeRepository), new(MockBookingRepository))

	_, err := service.ResolveRange(context.Background(), date(2025, 6, 12), date(2025, 6, 12))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = service.ResolveRange(context.Background(), date(2025, 6, 12), date(2025, 6, 10))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolveRange_Idempotent(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockTypes := new(MockRoomTypeRepository)
	mockBookings := new(MockBookingRepository)

	rooms, types := deluxeFixtures()
	checkIn := date(2025, 6, 10)
	checkOut := date(2025, 6, 12)

	mockRooms.On("GetAll", mock.Anything).Return(rooms, nil)
	mockTypes.On("GetAll", mock.Anything).Return(types, nil)
	mockBookings.On("GetOverlapping", mock.Anything, checkIn, checkOut).Return([]domain.Booking{
		{ID: 77, RoomID: 1, CheckIn: checkIn, CheckOut: checkOut, Status: domain.BookingConfirmed},
	}, nil)

	service := NewService(mockRooms, mockTypes, mockBookings)

	first, err := service.ResolveRange(context.Background(), checkIn, checkOut)
	assert.NoError(t, err)
	second, err := service.ResolveRange(context.Background(), checkIn, checkOut)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveRange_FetchErrorSurfaced(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockTypes := new(MockRoomTypeRepository)
	mockBookings := new(MockBookingRepository)

	mockRooms.On("GetAll", mock.Anything).Return(nil, errors.New("store down"))

	service := NewService(mockRooms, mockTypes, mockBookings)
	_, err := service.ResolveRange(context.Background(), date(2025, 6, 10), date(2025, 6, 12))

	assert.Error(t, err)
	mockRooms.AssertNumberOfCalls(t, "GetAll", 1)
}

func TestResolveDay_AnnotatesWithoutMutatingNominalStatus(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockTypes := new(MockRoomTypeRepository)
	mockBookings := new(MockBookingRepository)

	rooms, _ := deluxeFixtures()
	day := date(2025, 6, 10)

	mockRooms.On("GetAll", mock.Anything).Return(rooms, nil)
	mockBookings.On("GetOverlapping", mock.Anything, day, date(2025, 6, 11)).Return([]domain.Booking{
		{ID: 42, RoomID: 2, CheckIn: date(2025, 6, 9), CheckOut: date(2025, 6, 11), Status: domain.BookingConfirmed},
	}, nil)

	service := NewService(mockRooms, mockTypes, mockBookings)
	result, err := service.ResolveDay(context.Background(), day)

	assert.NoError(t, err)
	assert.Len(t, result, 4)

	for _, st := range result {
		if st.Room.ID == 2 {
			assert.Equal(t, DerivedBooked, st.DerivedStatus)
			assert.Equal(t, int64(42), st.BookingID)
		} else {
			assert.Equal(t, DerivedAvailable, st.DerivedStatus)
		}
		// the stored field keeps its nominal value either way
		assert.Equal(t, domain.RoomAvailable, st.Room.Status)
	}
}
