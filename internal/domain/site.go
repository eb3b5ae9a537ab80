package domain

import "time"

type EnquiryStatus string

const (
	EnquiryNew     EnquiryStatus = "new"
	EnquiryHandled EnquiryStatus = "handled"
)

// Enquiry is a message submitted through the public contact form.
type Enquiry struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Email     string        `json:"email" validate:"required,email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `json:"message" validate:"required" gorm:"type:text"`
	Status    EnquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryImage is one entry of the public photo gallery.
type GalleryImage struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url" validate:"required,url"`
	Caption   string    `json:"caption,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
