package site

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotelsite/internal/domain"
	"hotelsite/internal/repository"
)

// Service is the thin CRUD glue behind the marketing pages: contact
// enquiries, newsletter signups and the photo gallery.
type Service struct {
	enquiries   *repository.EnquiryRepository
	subscribers *repository.SubscriberRepository
	gallery     *repository.GalleryRepository
}

func NewService(
	enquiries *repository.EnquiryRepository,
	subscribers *repository.SubscriberRepository,
	gallery *repository.GalleryRepository,
) *Service {
	return &Service{enquiries, subscribers, gallery}
}

/* ---------- ENQUIRIES ---------- */

func (s *Service) SubmitEnquiry(ctx context.Context, req SubmitEnquiryRequest) (*domain.Enquiry, error) {
	e := &domain.Enquiry{
		Name:    req.Name,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.EnquiryNew,
	}
	if err := s.enquiries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetEnquiries(ctx context.Context, limit, offset int) ([]domain.Enquiry, error) {
	return s.enquiries.GetAll(ctx, limit, offset)
}

func (s *Service) MarkEnquiryHandled(ctx context.Context, id int64) error {
	return s.enquiries.UpdateStatus(ctx, id, domain.EnquiryHandled)
}

/* ---------- NEWSLETTER ---------- */

// Subscribe records a newsletter signup. Subscribing an already-subscribed
// email is a quiet success, not an error the visitor has to see.
func (s *Service) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.subscribers.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &domain.Subscriber{Email: email}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) GetSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.subscribers.GetAll(ctx)
}

func (s *Service) Unsubscribe(ctx context.Context, id int64) error {
	return s.subscribers.Delete(ctx, id)
}

/* ---------- GALLERY ---------- */

func (s *Service) GetGallery(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.gallery.GetAll(ctx)
}

func (s *Service) AddGalleryImage(ctx context.Context, req AddGalleryImageRequest) (*domain.GalleryImage, error) {
	img := &domain.GalleryImage{
		URL:       req.URL,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	}
	if err := s.gallery.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) RemoveGalleryImage(ctx context.Context, id int64) error {
	return s.gallery.Delete(ctx, id)
}
