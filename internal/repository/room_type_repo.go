package repository

import (
	"context"
	"time"

	"hotelsite/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

type roomTypeModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	NightlyRate float64   `gorm:"column:nightly_rate"`
	Capacity    int       `gorm:"column:capacity"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomTypeModel) TableName() string { return "room_types" }

func toDomainRoomType(m roomTypeModel) *domain.RoomType {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return &domain.RoomType{
		ID:          m.ID,
		Name:        m.Name,
		NightlyRate: m.NightlyRate,
		Capacity:    m.Capacity,
		Description: desc,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomTypeModel(t *domain.RoomType) roomTypeModel {
	return roomTypeModel{
		ID:          t.ID,
		Name:        t.Name,
		NightlyRate: t.NightlyRate,
		Capacity:    t.Capacity,
		Description: optional(t.Description),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, t *domain.RoomType) error {
	m := toRoomTypeModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainRoomType(m)
	return nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, t *domain.RoomType) error {
	m := toRoomTypeModel(t)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainRoomType(m)
	return nil
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var m roomTypeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoomType(m), nil
}

func (r *RoomTypeRepository) GetByName(ctx context.Context, name string) (*domain.RoomType, error) {
	var m roomTypeModel
	tx := r.db.WithContext(ctx).Where("name = ?", name).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoomType(m), nil
}

func (r *RoomTypeRepository) GetAll(ctx context.Context) ([]domain.RoomType, error) {
	var models []roomTypeModel
	tx := r.db.WithContext(ctx).Order("name").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RoomType, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoomType(m))
	}
	return out, nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomTypeModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
