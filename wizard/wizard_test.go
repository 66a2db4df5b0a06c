package wizard

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mentorhub/career_mentor/models"
)

var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func testMentor() *models.MentorProfile {
	return &models.MentorProfile{
		ID:                uuid.New(),
		Headline:          "Senior Software Engineer at Google",
		SessionPriceCents: 10000,
		Services: []models.MentorService{
			{
				ID:              uuid.New(),
				ServiceType:     models.ServiceResumeReview,
				DurationMinutes: 30,
				IsActive:        true,
			},
			{
				ID:                 uuid.New(),
				ServiceType:        models.ServiceMockInterview,
				DurationMinutes:    60,
				PriceOverrideCents: centsPtr(2500),
				IsActive:           true,
			},
			{
				ID:              uuid.New(),
				ServiceType:     models.ServiceOther,
				DurationMinutes: 45,
				IsActive:        false,
			},
		},
	}
}

func centsPtr(v int64) *int64 { return &v }

func TestParseQueryDefaultsToServiceStep(t *testing.T) {
	for _, raw := range []string{"", "step=1", "step=99", "step=abc"} {
		q, _ := url.ParseQuery(raw)
		s := ParseQuery("m1", q)
		if s.Step != StepService {
			t.Fatalf("query %q: expected step 1, got %d", raw, s.Step)
		}
	}
}

func TestQueryRoundTripIsIdempotent(t *testing.T) {
	cases := []State{
		{MentorID: "m1", Step: StepService},
		{MentorID: "m1", Step: StepSchedule, ServiceID: "s1"},
		{MentorID: "m1", Step: StepConfirm, ServiceID: "s1", Date: "2025-01-20", Time: "10:00"},
	}
	for _, s := range cases {
		got := ParseQuery(s.MentorID, s.Query())
		if got != s {
			t.Fatalf("round trip changed state: %+v -> %+v", s, got)
		}
	}
}

func TestForwardRequiresServiceSelection(t *testing.T) {
	s := State{MentorID: "m1", Step: StepService}

	if _, err := Next(s, Event{Kind: EventSelectService}, testNow); err != ErrServiceRequired {
		t.Fatalf("expected ErrServiceRequired, got %v", err)
	}

	next, err := Next(s, Event{Kind: EventSelectService, ServiceID: "s1"}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Step != StepSchedule || next.ServiceID != "s1" {
		t.Fatalf("unexpected next state: %+v", next)
	}
}

func TestBackFromTopOfFlowIsInvalid(t *testing.T) {
	s := State{MentorID: "m1", Step: StepService}
	if _, err := Next(s, Event{Kind: EventBack}, testNow); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestScheduleStepGates(t *testing.T) {
	s := State{MentorID: "m1", Step: StepSchedule, ServiceID: "s1"}

	cases := []struct {
		name string
		ev   Event
		err  error
	}{
		{"missing date", Event{Kind: EventPickSchedule, Time: "10:00"}, ErrScheduleRequired},
		{"missing time", Event{Kind: EventPickSchedule, Date: "2025-01-20"}, ErrScheduleRequired},
		{"garbage date", Event{Kind: EventPickSchedule, Date: "not-a-date", Time: "10:00"}, ErrInvalidDate},
		{"past date", Event{Kind: EventPickSchedule, Date: "2025-01-14", Time: "10:00"}, ErrDateInPast},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Next(s, c.ev, testNow); err != c.err {
				t.Fatalf("expected %v, got %v", c.err, err)
			}
		})
	}

	next, err := Next(s, Event{Kind: EventPickSchedule, Date: "2025-01-20", Time: "10:00"}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Step != StepConfirm || next.Date != "2025-01-20" || next.Time != "10:00" {
		t.Fatalf("unexpected next state: %+v", next)
	}
}

func TestTodayIsAValidDate(t *testing.T) {
	s := State{MentorID: "m1", Step: StepSchedule, ServiceID: "s1"}
	if _, err := Next(s, Event{Kind: EventPickSchedule, Date: "2025-01-15", Time: "09:00"}, testNow); err != nil {
		t.Fatalf("same-day booking rejected: %v", err)
	}
}

func TestBackNavigationDropsAccumulatedState(t *testing.T) {
	confirm := State{MentorID: "m1", Step: StepConfirm, ServiceID: "s1", Date: "2025-01-20", Time: "10:00"}

	schedule, err := Next(confirm, Event{Kind: EventBack}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule.Step != StepSchedule || schedule.ServiceID != "s1" {
		t.Fatalf("back from confirm should keep the service: %+v", schedule)
	}
	if schedule.Date != "" || schedule.Time != "" {
		t.Fatalf("back from confirm must drop date and time: %+v", schedule)
	}

	service, err := Next(schedule, Event{Kind: EventBack}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if service.Step != StepService || service.ServiceID != "" {
		t.Fatalf("back from schedule must drop the service too: %+v", service)
	}

	// Moving forward again starts from scratch.
	if _, err := Next(service, Event{Kind: EventSelectService}, testNow); err != ErrServiceRequired {
		t.Fatalf("expected ErrServiceRequired after back navigation, got %v", err)
	}
}

func TestConfirmIsTerminal(t *testing.T) {
	confirm := State{MentorID: "m1", Step: StepConfirm, ServiceID: "s1", Date: "2025-01-20", Time: "10:00"}

	success, err := Next(confirm, Event{Kind: EventConfirm}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if success.Step != StepSuccess {
		t.Fatalf("expected success step, got %+v", success)
	}

	if _, err := Next(success, Event{Kind: EventConfirm}, testNow); err != ErrInvalidTransition {
		t.Fatalf("success must be terminal, got %v", err)
	}
	if _, err := Next(success, Event{Kind: EventBack}, testNow); err != ErrInvalidTransition {
		t.Fatalf("success must be terminal, got %v", err)
	}
}

func TestConfirmWithIncompleteStateIsInvalid(t *testing.T) {
	s := State{MentorID: "m1", Step: StepConfirm, ServiceID: "s1", Date: "2025-01-20"}
	if _, err := Next(s, Event{Kind: EventConfirm}, testNow); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestValidateRejectsForeignServiceID(t *testing.T) {
	mentor := testMentor()
	s := State{MentorID: mentor.ID.String(), Step: StepSchedule, ServiceID: uuid.New().String()}
	if err := Validate(s, mentor, testNow); err != ErrInvalidDetails {
		t.Fatalf("expected ErrInvalidDetails, got %v", err)
	}
}

func TestValidateRejectsInactiveService(t *testing.T) {
	mentor := testMentor()
	inactive := mentor.Services[2]
	s := State{MentorID: mentor.ID.String(), Step: StepSchedule, ServiceID: inactive.ID.String()}
	if err := Validate(s, mentor, testNow); err != ErrInvalidDetails {
		t.Fatalf("expected ErrInvalidDetails, got %v", err)
	}
}

func TestValidateConfirmStepRequiresFullState(t *testing.T) {
	mentor := testMentor()
	svcID := mentor.Services[0].ID.String()

	cases := []State{
		{Step: StepConfirm, ServiceID: svcID},                                        // no schedule
		{Step: StepConfirm, ServiceID: svcID, Date: "2025-01-20"},                    // no time
		{Step: StepConfirm, ServiceID: svcID, Date: "bogus", Time: "10:00"},          // bad date
		{Step: StepConfirm, ServiceID: svcID, Date: "2025-01-20", Time: "25:99"},     // bad time
		{Step: StepConfirm, ServiceID: svcID, Date: "2024-12-31", Time: "10:00"},     // past
		{Step: StepConfirm, ServiceID: uuid.NewString(), Date: "2025-01-20", Time: "10:00"}, // foreign service
	}
	for i, s := range cases {
		s.MentorID = mentor.ID.String()
		if err := Validate(s, mentor, testNow); err != ErrInvalidDetails {
			t.Fatalf("case %d: expected ErrInvalidDetails, got %v", i, err)
		}
	}

	valid := State{MentorID: mentor.ID.String(), Step: StepConfirm, ServiceID: svcID, Date: "2025-01-20", Time: "10:00"}
	if err := Validate(valid, mentor, testNow); err != nil {
		t.Fatalf("valid state rejected: %v", err)
	}
}

func TestResolvePriceUsesBasePriceWithoutOverride(t *testing.T) {
	mentor := testMentor()
	svc := &mentor.Services[0] // no override, base price 10000

	cents := ResolvePriceCents(svc, mentor)
	if cents != 10000 {
		t.Fatalf("expected 10000 cents, got %d", cents)
	}
	if got := FormatCents(cents); got != "$100.00" {
		t.Fatalf("expected $100.00, got %s", got)
	}
}

func TestResolvePriceOverrideWins(t *testing.T) {
	mentor := testMentor()
	svc := &mentor.Services[1] // override 2500

	cents := ResolvePriceCents(svc, mentor)
	if cents != 2500 {
		t.Fatalf("expected 2500 cents, got %d", cents)
	}
	if got := FormatCents(cents); got != "$25.00" {
		t.Fatalf("expected $25.00, got %s", got)
	}
}

func TestScheduledAtCombinesDateAndTime(t *testing.T) {
	s := State{Date: "2025-01-20", Time: "14:30"}
	at, err := s.ScheduledAt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC)
	if !at.Equal(expected) {
		t.Fatalf("expected %v, got %v", expected, at)
	}
}
