package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID  uuid.UUID `gorm:"not null" json:"mentor_id"`
	SeekerID  uuid.UUID `gorm:"not null" json:"seeker_id"`
	ServiceID uuid.UUID `gorm:"not null" json:"service_id"`

	ScheduledAt     time.Time `gorm:"not null" json:"scheduled_at"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	// Resolved price at booking time: the service override when present,
	// otherwise the mentor's base session price.
	AmountCents int64 `gorm:"not null" json:"amount_cents"`

	MeetingLink     *string `gorm:"size:255" json:"meeting_link"`
	PaymentIntentID *string `gorm:"size:255" json:"payment_intent_id"`
	Notes           *string `gorm:"type:text" json:"notes"`

	Mentor  MentorProfile `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`
	Seeker  User          `gorm:"foreignkey:SeekerID" json:"seeker,omitempty"`
	Service MentorService `gorm:"foreignkey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
