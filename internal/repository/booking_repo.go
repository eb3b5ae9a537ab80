package repository

import (
	"context"
	"time"

	"hotelsite/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	RoomID        int64     `gorm:"column:room_id"`
	CheckIn       time.Time `gorm:"column:check_in"`
	CheckOut      time.Time `gorm:"column:check_out"`
	Status        string    `gorm:"column:status"`
	GuestName     string    `gorm:"column:guest_name"`
	GuestEmail    string    `gorm:"column:guest_email"`
	GuestPhone    string    `gorm:"column:guest_phone"`
	Address       *string   `gorm:"column:address"`
	GovIDNumber   *string   `gorm:"column:gov_id_number"`
	NumGuests     int       `gorm:"column:num_guests"`
	TotalPrice    float64   `gorm:"column:total_price"`
	Notes         *string   `gorm:"column:notes"`
	BookingSource string    `gorm:"column:booking_source"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var address, govID, notes string
	if m.Address != nil {
		address = *m.Address
	}
	if m.GovIDNumber != nil {
		govID = *m.GovIDNumber
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:            m.ID,
		RoomID:        m.RoomID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Status:        domain.BookingStatus(m.Status),
		GuestName:     m.GuestName,
		GuestEmail:    m.GuestEmail,
		GuestPhone:    m.GuestPhone,
		Address:       address,
		GovIDNumber:   govID,
		NumGuests:     m.NumGuests,
		TotalPrice:    m.TotalPrice,
		Notes:         notes,
		BookingSource: domain.BookingSource(m.BookingSource),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Status:        string(b.Status),
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		Address:       optional(b.Address),
		GovIDNumber:   optional(b.GovIDNumber),
		NumGuests:     b.NumGuests,
		TotalPrice:    b.TotalPrice,
		Notes:         optional(b.Notes),
		BookingSource: string(b.BookingSource),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// Update overwrites the mutable fields of an existing booking. created_at
// is carried over from the stored row; Save would otherwise zero it when the
// caller built the booking from scratch.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	var existing bookingModel
	if err := r.db.WithContext(ctx).First(&existing, b.ID).Error; err != nil {
		return err
	}

	m := toBookingModel(b)
	m.CreatedAt = existing.CreatedAt
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	q := r.db.WithContext(ctx).Order("check_in DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// GetOverlapping returns every non-cancelled booking whose
// [check_in, check_out) intersects [start, end). The half-open predicate is
// pushed into SQL so it stays the same test the service layer uses.
func (r *BookingRepository) GetOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("check_in < ? AND check_out > ?", end, start).
		Order("check_in").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// CountConflicts counts non-cancelled bookings on roomID intersecting
// [start, end), ignoring excludeID (0 means exclude nothing — pass the
// booking's own id when re-checking during an edit).
func (r *BookingRepository) CountConflicts(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("check_in < ? AND check_out > ?", end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if tx := q.Count(&cnt); tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasFutureBookings reports whether roomID still has non-cancelled bookings
// ending after now. Used to block room deletion from under live bookings.
func (r *BookingRepository) HasFutureBookings(ctx context.Context, roomID int64, now time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("check_out > ?", now).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
