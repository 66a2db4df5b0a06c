package models

import (
	"github.com/google/uuid"
)

// AvailabilityWindow is a weekly recurring window during which a mentor
// accepts bookings. Discrete bookable slots are generated from these windows.
type AvailabilityWindow struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID uuid.UUID `gorm:"not null" json:"-"`

	DayOfWeek int    `gorm:"not null" json:"day_of_week"`       // 0 = Sunday
	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM
	TimeZone  string `gorm:"size:100;not null;default:'UTC'" json:"timezone"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}
