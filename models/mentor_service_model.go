package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ServiceResumeReview      = "resume_review"
	ServiceMockInterview     = "mock_interview"
	ServiceCareerGuidance    = "career_guidance"
	ServiceCertificationPrep = "certification_prep"
	ServiceProjectReview     = "project_review"
	ServiceOther             = "other"
)

// ServiceTypes is the fixed catalogue of bookable offering kinds,
// with "other" as the catch-all.
var ServiceTypes = []string{
	ServiceResumeReview,
	ServiceMockInterview,
	ServiceCareerGuidance,
	ServiceCertificationPrep,
	ServiceProjectReview,
	ServiceOther,
}

func IsValidServiceType(t string) bool {
	for _, s := range ServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

type MentorService struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID uuid.UUID `gorm:"not null" json:"mentor_id"`

	ServiceType     string `gorm:"size:50;not null" json:"service_type"`
	Description     string `gorm:"type:text" json:"description"`
	DurationMinutes int    `gorm:"not null" json:"duration_minutes"`

	// nil means the parent profile's SessionPriceCents applies.
	PriceOverrideCents *int64 `json:"price_override"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
