package availability

import (
	"context"
	"sort"
	"time"

	"hotelsite/internal/domain"
	"hotelsite/internal/pkg/dates"
)

// RoomTypeAvailability is the derived per-type view for one query range.
// It is recomputed on every call and never persisted.
type RoomTypeAvailability struct {
	Type           string        `json:"type"`
	NightlyRate    float64       `json:"nightly_rate"`
	Capacity       int           `json:"capacity"`
	TotalCount     int           `json:"total_count"`
	AvailableCount int           `json:"available_count"`
	AvailableRooms []domain.Room `json:"available_rooms"`
}

// RoomDayStatus is one room annotated with its occupancy on a single date.
// The stored nominal Room.Status is untouched; DerivedStatus is computed.
type RoomDayStatus struct {
	Room          domain.Room `json:"room"`
	DerivedStatus string      `json:"derived_status"`
	BookingID     int64       `json:"booking_id,omitempty"`
}

const (
	DerivedAvailable = "available"
	DerivedBooked    = "booked"
)

// Service answers which rooms are free for a date range, grouped by type,
// and what the occupancy of every room is on a single date. Pure
// read/derive: no side effects, no caching, safe to call repeatedly.
type Service struct {
	rooms    RoomRepository
	types    RoomTypeRepository
	bookings BookingRepository
}

func NewService(rooms RoomRepository, types RoomTypeRepository, bookings BookingRepository) *Service {
	return &Service{rooms: rooms, types: types, bookings: bookings}
}

// ResolveRange partitions the room inventory into occupied and free for the
// half-open range [checkIn, checkOut) and groups the result by room type.
// Types with zero free rooms (or zero rooms at all) still appear so the
// caller can render "0 available" instead of dropping the type.
func (s *Service) ResolveRange(ctx context.Context, checkIn, checkOut time.Time) ([]RoomTypeAvailability, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidRange
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.types.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := s.occupiedRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*RoomTypeAvailability, len(types))
	order := make([]string, 0, len(types))
	for _, t := range types {
		byType[t.Name] = &RoomTypeAvailability{
			Type:           t.Name,
			NightlyRate:    t.NightlyRate,
			Capacity:       t.Capacity,
			AvailableRooms: []domain.Room{},
		}
		order = append(order, t.Name)
	}

	for _, room := range rooms {
		entry, ok := byType[room.Type]
		if !ok {
			// room referencing a type missing from the catalog: still report it
			entry = &RoomTypeAvailability{Type: room.Type, AvailableRooms: []domain.Room{}}
			byType[room.Type] = entry
			order = append(order, room.Type)
		}
		entry.TotalCount++
		if _, taken := occupied[room.ID]; !taken {
			entry.AvailableCount++
			entry.AvailableRooms = append(entry.AvailableRooms, room)
		}
	}

	sort.Strings(order)

	out := make([]RoomTypeAvailability, 0, len(order))
	for _, name := range order {
		entry := byType[name]
		sort.Slice(entry.AvailableRooms, func(i, j int) bool {
			return entry.AvailableRooms[i].Number < entry.AvailableRooms[j].Number
		})
		out = append(out, *entry)
	}
	return out, nil
}

// ResolveDay annotates every room with its occupancy on the given date,
// expressed as the degenerate range [day, day+1).
func (s *Service) ResolveDay(ctx context.Context, date time.Time) ([]RoomDayStatus, error) {
	day := dates.Day(date)
	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := s.occupiedRoomIDs(ctx, day, dates.NextDay(day))
	if err != nil {
		return nil, err
	}

	out := make([]RoomDayStatus, 0, len(rooms))
	for _, room := range rooms {
		st := RoomDayStatus{Room: room, DerivedStatus: DerivedAvailable}
		if bookingID, taken := occupied[room.ID]; taken {
			st.DerivedStatus = DerivedBooked
			st.BookingID = bookingID
		}
		out = append(out, st)
	}
	return out, nil
}

// occupiedRoomIDs maps room id -> blocking booking id for [start, end).
// The repository already filters cancelled bookings and applies the overlap
// predicate in SQL; the in-memory re-check keeps the two layers honest.
func (s *Service) occupiedRoomIDs(ctx context.Context, start, end time.Time) (map[int64]int64, error) {
	bookings, err := s.bookings.GetOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}

	occupied := make(map[int64]int64, len(bookings))
	for _, b := range bookings {
		if !b.Blocking() {
			continue
		}
		if !dates.Overlaps(b.CheckIn, b.CheckOut, start, end) {
			continue
		}
		occupied[b.RoomID] = b.ID
	}
	return occupied, nil
}
