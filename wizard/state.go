package wizard

import (
	"net/url"
	"time"
)

// Step is one position in the linear booking flow.
type Step int

const (
	StepService  Step = 1 // pick a service
	StepSchedule Step = 2 // pick a date and time slot
	StepConfirm  Step = 3 // review and confirm
	StepSuccess  Step = 4 // terminal
)

const (
	paramStep    = "step"
	paramService = "service"
	paramDate    = "date"
	paramTime    = "time"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// State is the full wizard position, carried in URL query parameters so
// every step is independently linkable and reconstructible from a URL alone.
type State struct {
	MentorID  string `json:"mentor_id"`
	Step      Step   `json:"step"`
	ServiceID string `json:"service_id,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
}

// ParseQuery rebuilds a wizard state from query parameters. An absent or
// unrecognized step parameter lands on the first step; parameter values are
// carried as-is and validated against the mentor separately.
func ParseQuery(mentorID string, q url.Values) State {
	s := State{
		MentorID:  mentorID,
		Step:      StepService,
		ServiceID: q.Get(paramService),
		Date:      q.Get(paramDate),
		Time:      q.Get(paramTime),
	}
	switch q.Get(paramStep) {
	case "2":
		s.Step = StepSchedule
	case "3":
		s.Step = StepConfirm
	}
	return s
}

// Query serializes the state back to query parameters. Only parameters the
// current step has accumulated are emitted, so Encode(Parse(q)) is stable.
func (s State) Query() url.Values {
	q := url.Values{}
	switch s.Step {
	case StepSchedule:
		q.Set(paramStep, "2")
	case StepConfirm:
		q.Set(paramStep, "3")
	}
	if s.ServiceID != "" {
		q.Set(paramService, s.ServiceID)
	}
	if s.Date != "" {
		q.Set(paramDate, s.Date)
	}
	if s.Time != "" {
		q.Set(paramTime, s.Time)
	}
	return q
}

// ParseDate parses the state's date parameter.
func (s State) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, s.Date)
}

// ScheduledAt combines the date and time parameters into the booking
// timestamp, in UTC.
func (s State) ScheduledAt() (time.Time, error) {
	return time.Parse(DateLayout+" "+TimeLayout, s.Date+" "+s.Time)
}
