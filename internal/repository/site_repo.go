package repository

import (
	"context"
	"time"

	"hotelsite/internal/domain"

	"gorm.io/gorm"
)

/* ---------- ENQUIRIES ---------- */

type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

type enquiryModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Subject   *string   `gorm:"column:subject"`
	Message   string    `gorm:"column:message"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (enquiryModel) TableName() string { return "enquiries" }

func toDomainEnquiry(m enquiryModel) *domain.Enquiry {
	var phone, subject string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Subject != nil {
		subject = *m.Subject
	}
	return &domain.Enquiry{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     phone,
		Subject:   subject,
		Message:   m.Message,
		Status:    domain.EnquiryStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) error {
	m := enquiryModel{
		Name:      e.Name,
		Email:     e.Email,
		Phone:     optional(e.Phone),
		Subject:   optional(e.Subject),
		Message:   e.Message,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEnquiry(m)
	return nil
}

func (r *EnquiryRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Enquiry, error) {
	var models []enquiryModel
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Enquiry, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainEnquiry(m))
	}
	return out, nil
}

func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&enquiryModel{}).
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

/* ---------- NEWSLETTER ---------- */

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

type subscriberModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (subscriberModel) TableName() string { return "subscribers" }

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var m subscriberModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Subscriber{ID: m.ID, Email: m.Email, CreatedAt: m.CreatedAt}, nil
}

func (r *SubscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	m := subscriberModel{Email: s.Email, CreatedAt: s.CreatedAt}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	return nil
}

func (r *SubscriberRepository) GetAll(ctx context.Context) ([]domain.Subscriber, error) {
	var models []subscriberModel
	tx := r.db.WithContext(ctx).Order("created_at").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Subscriber, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Subscriber{ID: m.ID, Email: m.Email, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&subscriberModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ---------- GALLERY ---------- */

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type galleryImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	URL       string    `gorm:"column:url"`
	Caption   *string   `gorm:"column:caption"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (galleryImageModel) TableName() string { return "gallery_images" }

func toDomainGalleryImage(m galleryImageModel) domain.GalleryImage {
	var caption string
	if m.Caption != nil {
		caption = *m.Caption
	}
	return domain.GalleryImage{
		ID:        m.ID,
		URL:       m.URL,
		Caption:   caption,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

func (r *GalleryRepository) Create(ctx context.Context, img *domain.GalleryImage) error {
	m := galleryImageModel{
		URL:       img.URL,
		Caption:   optional(img.Caption),
		SortOrder: img.SortOrder,
		CreatedAt: img.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*img = toDomainGalleryImage(m)
	return nil
}

func (r *GalleryRepository) GetAll(ctx context.Context) ([]domain.GalleryImage, error) {
	var models []galleryImageModel
	tx := r.db.WithContext(ctx).Order("sort_order, id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.GalleryImage, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainGalleryImage(m))
	}
	return out, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&galleryImageModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
