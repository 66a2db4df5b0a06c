package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MentorProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;unique" json:"user_id"`

	Headline          string         `gorm:"size:255;not null" json:"headline"`
	Company           string         `gorm:"size:255;not null" json:"company"`
	JobTitle          string         `gorm:"size:255;not null" json:"job_title"`
	YearsOfExperience int            `gorm:"not null;default:0" json:"years_of_experience"`
	Bio               string         `gorm:"type:text" json:"bio"`
	ExpertiseTags     pq.StringArray `gorm:"type:text[]" json:"expertise_tags"`

	// Stored at double precision so a rating of 4.7 compares equal to a
	// 4.7 filter threshold.
	AvgRating     float64 `gorm:"type:double precision;default:0" json:"avg_rating"`
	TotalSessions int     `gorm:"not null;default:0" json:"total_sessions"`

	// Default per-session price in minor currency units. A service may
	// carry its own override, see MentorService.PriceOverrideCents.
	SessionPriceCents int64 `gorm:"not null" json:"session_price"`

	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`

	User     User            `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Services []MentorService `gorm:"foreignkey:MentorID" json:"services,omitempty"`
	Reviews  []Review        `gorm:"foreignkey:MentorID" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
