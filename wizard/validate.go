package wizard

import (
	"errors"
	"time"

	"github.com/mentorhub/career_mentor/models"
)

// ErrInvalidDetails marks a state whose parameters do not resolve against
// the mentor: a foreign or inactive service id, or missing schedule values.
// It is distinct from not-found so handlers can keep the two apart.
var ErrInvalidDetails = errors.New("invalid booking details")

// FindService resolves a service id within the mentor's own service list.
// A service id that does not belong to the mentor resolves to nil, never to
// a fallback.
func FindService(profile *models.MentorProfile, serviceID string) *models.MentorService {
	for i := range profile.Services {
		if profile.Services[i].ID.String() == serviceID {
			return &profile.Services[i]
		}
	}
	return nil
}

// Validate checks that the state's parameters resolve against the mentor for
// the step they claim. Each step re-validates independently, so any step is
// safe to land on from a bare URL.
func Validate(s State, profile *models.MentorProfile, now time.Time) error {
	if s.Step >= StepSchedule {
		svc := FindService(profile, s.ServiceID)
		if svc == nil || !svc.IsActive {
			return ErrInvalidDetails
		}
	}
	if s.Step >= StepConfirm {
		if s.Date == "" || s.Time == "" {
			return ErrInvalidDetails
		}
		day, err := s.ParseDate()
		if err != nil {
			return ErrInvalidDetails
		}
		if _, err := time.Parse(TimeLayout, s.Time); err != nil {
			return ErrInvalidDetails
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if day.Before(today) {
			return ErrInvalidDetails
		}
	}
	return nil
}
