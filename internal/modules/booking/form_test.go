package booking

import (
	"testing"
	"time"

	"hotelsite/internal/domain"
	"hotelsite/internal/modules/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func deluxeSnapshot() []availability.RoomTypeAvailability {
	return []availability.RoomTypeAvailability{
		{
			Type:           "Deluxe",
			NightlyRate:    2000,
			Capacity:       2,
			TotalCount:     3,
			AvailableCount: 2,
			AvailableRooms: []domain.Room{
				{ID: 2, Number: "D2", Type: "Deluxe"},
				{ID: 3, Number: "D3", Type: "Deluxe"},
			},
		},
		{
			Type:           "Standard",
			NightlyRate:    1200,
			Capacity:       2,
			TotalCount:     2,
			AvailableCount: 0,
			AvailableRooms: []domain.Room{},
		},
	}
}

func completeGuest() GuestDetails {
	return GuestDetails{
		Name:      "Alan Turing",
		Email:     "alan@example.com",
		Phone:     "+44 1234 567890",
		NumGuests: 2,
	}
}

func confirmedForm(t *testing.T) *Form {
	t.Helper()
	f := NewForm()
	require.NoError(t, f.SetDates(date(2027, 6, 10), date(2027, 6, 13)))
	require.NoError(t, f.BeginConfirm())
	f.CompleteConfirm(deluxeSnapshot())
	return f
}

func TestForm_HappyPath(t *testing.T) {
	f := confirmedForm(t)
	assert.Equal(t, FormDatesConfirmed, f.State())

	require.NoError(t, f.SelectRoomType("Deluxe"))
	assert.Equal(t, FormRoomTypeSet, f.State())
	assert.Len(t, f.candidates, 2)

	require.NoError(t, f.SelectRoom(3))
	assert.Equal(t, FormRoomSet, f.State())
	assert.False(t, f.Submittable(), "guest details still missing")

	f.SetGuest(completeGuest())
	assert.True(t, f.Submittable())

	b := f.Build()
	assert.Equal(t, int64(3), b.RoomID)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, 6000.0, b.TotalPrice) // 3 nights x 2000
}

func TestForm_RoomSelectionLockedUntilConfirmed(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetDates(date(2027, 6, 10), date(2027, 6, 13)))

	assert.ErrorIs(t, f.SelectRoomType("Deluxe"), ErrDatesNotConfirmed)
	assert.ErrorIs(t, f.SelectRoom(2), ErrDatesNotConfirmed)
}

func TestForm_DateEditResetsConfirmationAndRoom(t *testing.T) {
	f := confirmedForm(t)
	require.NoError(t, f.SelectRoomType("Deluxe"))
	require.NoError(t, f.SelectRoom(2))
	f.SetGuest(completeGuest())
	require.True(t, f.Submittable())

	require.NoError(t, f.SetDates(date(2027, 6, 11), date(2027, 6, 14)))

	assert.Equal(t, FormDatesUnconfirmed, f.State())
	assert.Zero(t, f.roomID)
	assert.Empty(t, f.roomType)
	assert.Nil(t, f.snapshot)
	assert.False(t, f.Submittable())

	// room selection is locked again until reconfirmation
	assert.ErrorIs(t, f.SelectRoom(2), ErrDatesNotConfirmed)
}

func TestForm_InvalidDates(t *testing.T) {
	f := NewForm()

	assert.ErrorIs(t, f.SetDates(date(2027, 6, 10), date(2027, 6, 10)), ErrInvalidRange)
	assert.ErrorIs(t, f.SetDates(date(2027, 6, 12), date(2027, 6, 10)), ErrInvalidRange)
	assert.ErrorIs(t, f.SetDates(date(2020, 1, 1), date(2020, 1, 5)), ErrDateInPast)
}

func TestForm_SelectRoomOutsideCandidates(t *testing.T) {
	f := confirmedForm(t)
	require.NoError(t, f.SelectRoomType("Deluxe"))

	// D1 (id 1) is occupied and not a candidate
	assert.ErrorIs(t, f.SelectRoom(1), ErrRoomNotCandidate)
}

func TestForm_UnknownRoomType(t *testing.T) {
	f := confirmedForm(t)
	assert.ErrorIs(t, f.SelectRoomType("Penthouse"), ErrUnknownRoomType)
}

func TestForm_ZeroRateNeverSubmittable(t *testing.T) {
	f := confirmedForm(t)
	f.snapshot[0].NightlyRate = 0
	require.NoError(t, f.SelectRoomType("Deluxe"))
	require.NoError(t, f.SelectRoom(2))
	f.SetGuest(completeGuest())

	assert.False(t, f.Submittable())
}

func TestForm_FailConfirmDropsBack(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetDates(date(2027, 6, 10), date(2027, 6, 13)))
	require.NoError(t, f.BeginConfirm())
	assert.Equal(t, FormDatesConfirming, f.State())

	f.FailConfirm()
	assert.Equal(t, FormDatesUnconfirmed, f.State())
	assert.Nil(t, f.snapshot)
}

func TestEditForm_HeldRoomKeptWhenStillAvailable(t *testing.T) {
	b := &domain.Booking{
		ID:         41,
		RoomID:     2,
		CheckIn:    date(2027, 6, 10),
		CheckOut:   date(2027, 6, 13),
		Status:     domain.BookingConfirmed,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		GuestPhone: "+44 207 946 0000",
		NumGuests:  1,
	}

	f := NewEditForm(b)
	require.NoError(t, f.BeginConfirm())
	f.CompleteConfirm(deluxeSnapshot())

	require.NoError(t, f.SelectRoomType("Deluxe"))
	assert.Equal(t, FormRoomSet, f.State())
	assert.Equal(t, int64(2), f.roomID)
	assert.True(t, f.Submittable())
	assert.Equal(t, int64(41), f.Build().ID)
}

func TestEditForm_HeldRoomClearedWhenNoLongerCandidate(t *testing.T) {
	b := &domain.Booking{
		ID:         41,
		RoomID:     1, // occupied by someone else in the snapshot
		CheckIn:    date(2027, 6, 10),
		CheckOut:   date(2027, 6, 13),
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		GuestPhone: "+44 207 946 0000",
		NumGuests:  1,
	}

	f := NewEditForm(b)
	require.NoError(t, f.BeginConfirm())
	f.CompleteConfirm(deluxeSnapshot())

	require.NoError(t, f.SelectRoomType("Deluxe"))
	assert.Equal(t, FormRoomTypeSet, f.State())
	assert.Zero(t, f.roomID, "held room must be cleared, forcing a re-pick")
	assert.False(t, f.Submittable())
}

func TestForm_TotalPriceDerived(t *testing.T) {
	f := confirmedForm(t)
	require.NoError(t, f.SelectRoomType("Deluxe"))

	assert.Equal(t, 3, f.Nights())
	assert.Equal(t, 6000.0, f.TotalPrice())
}
