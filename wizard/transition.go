package wizard

import (
	"errors"
	"time"
)

var (
	ErrInvalidTransition = errors.New("invalid step transition")
	ErrServiceRequired   = errors.New("a service must be selected before continuing")
	ErrScheduleRequired  = errors.New("both date and time must be selected before continuing")
	ErrDateInPast        = errors.New("the selected date cannot be in the past")
	ErrInvalidDate       = errors.New("the selected date is not a valid calendar date")
)

type EventKind int

const (
	EventSelectService EventKind = iota
	EventPickSchedule
	EventBack
	EventConfirm
)

// Event is the user action driving the flow forward or backward.
type Event struct {
	Kind      EventKind
	ServiceID string
	Date      string
	Time      string
}

// Next is the pure transition function of the booking flow. The flow is
// linear with no cycles: service -> schedule -> confirm -> success. Backward
// moves drop the state the abandoned step had accumulated, so returning to a
// step always requires re-entering its selections.
func Next(s State, ev Event, now time.Time) (State, error) {
	switch s.Step {
	case StepService:
		switch ev.Kind {
		case EventSelectService:
			if ev.ServiceID == "" {
				return State{}, ErrServiceRequired
			}
			return State{MentorID: s.MentorID, Step: StepSchedule, ServiceID: ev.ServiceID}, nil
		case EventBack:
			// Top of the flow.
			return State{}, ErrInvalidTransition
		}

	case StepSchedule:
		switch ev.Kind {
		case EventPickSchedule:
			if s.ServiceID == "" {
				return State{}, ErrServiceRequired
			}
			if ev.Date == "" || ev.Time == "" {
				return State{}, ErrScheduleRequired
			}
			day, err := time.Parse(DateLayout, ev.Date)
			if err != nil {
				return State{}, ErrInvalidDate
			}
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if day.Before(today) {
				return State{}, ErrDateInPast
			}
			return State{
				MentorID:  s.MentorID,
				Step:      StepConfirm,
				ServiceID: s.ServiceID,
				Date:      ev.Date,
				Time:      ev.Time,
			}, nil
		case EventBack:
			// The back URL carries nothing, the service must be re-picked.
			return State{MentorID: s.MentorID, Step: StepService}, nil
		}

	case StepConfirm:
		switch ev.Kind {
		case EventConfirm:
			if s.ServiceID == "" || s.Date == "" || s.Time == "" {
				return State{}, ErrInvalidTransition
			}
			return State{
				MentorID:  s.MentorID,
				Step:      StepSuccess,
				ServiceID: s.ServiceID,
				Date:      s.Date,
				Time:      s.Time,
			}, nil
		case EventBack:
			// Date and time are not re-encoded into the back URL.
			return State{MentorID: s.MentorID, Step: StepSchedule, ServiceID: s.ServiceID}, nil
		}

	case StepSuccess:
		// Terminal; leaving the flow is plain navigation, not a transition.
	}

	return State{}, ErrInvalidTransition
}
