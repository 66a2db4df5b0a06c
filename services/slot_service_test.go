package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/mentorhub/career_mentor/models"
)

var now = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) // a Wednesday

func Test_m2t(t *testing.T) {
	cases := []struct {
		minutes  int
		expected string
	}{
		{540, "09:00"},
		{545, "09:05"},
		{600, "10:00"},
		{870, "14:30"},
		{1020, "17:00"},
	}
	for _, c := range cases {
		if got := m2t(c.minutes); got != c.expected {
			t.Fatalf("m2t(%d): expected %s, got %s", c.minutes, c.expected, got)
		}
	}
}

func Test_t2m(t *testing.T) {
	cases := []struct {
		time    string
		minutes int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"14:30", 870, false},
		{"00:00", 0, false},
		{"24:00", 1440, false},
		{"25:00", 0, true},
		{"09:61", 0, true},
		{"morning", 0, true},
	}
	for _, c := range cases {
		got, err := t2m(c.time)
		if c.wantErr {
			if err == nil {
				t.Fatalf("t2m(%q): expected error", c.time)
			}
			continue
		}
		if err != nil {
			t.Fatalf("t2m(%q): unexpected error %v", c.time, err)
		}
		if got != c.minutes {
			t.Fatalf("t2m(%q): expected %d, got %d", c.time, c.minutes, got)
		}
	}
}

func TestDefaultSlotsWhenNoWindowsConfigured(t *testing.T) {
	date := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	got := AvailableSlots(nil, date, now)
	expected := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestPastDatesHaveNoSlots(t *testing.T) {
	yesterday := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
	if got := AvailableSlots(nil, yesterday, now); len(got) != 0 {
		t.Fatalf("expected no slots for a past date, got %v", got)
	}
}

func TestTodayStillHasSlots(t *testing.T) {
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := AvailableSlots(nil, today, now); len(got) == 0 {
		t.Fatal("expected slots for today")
	}
}

func TestWindowsExpandAtHourlyCadence(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true}, // Monday
	}
	monday := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	got := AvailableSlots(windows, monday, now)
	expected := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestOtherWeekdaysAreEmptyWhenWindowsExist(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true},
	}
	tuesday := time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)

	if got := AvailableSlots(windows, tuesday, now); len(got) != 0 {
		t.Fatalf("expected no slots outside configured weekdays, got %v", got)
	}
}

func TestOverlappingWindowsAreMergedAndSorted(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "14:00", EndTime: "17:00", IsActive: true},
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", IsActive: true},
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", IsActive: true},
	}
	monday := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	got := AvailableSlots(windows, monday, now)
	expected := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestInactiveWindowsAreIgnored(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsActive: false},
	}
	monday := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	// Only inactive windows behaves as if none were configured.
	got := AvailableSlots(windows, monday, now)
	if !reflect.DeepEqual(got, []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}) {
		t.Fatalf("unexpected slots: %v", got)
	}
}

func TestMalformedWindowTimesAreSkipped(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "bogus", EndTime: "12:00", IsActive: true},
		{DayOfWeek: 1, StartTime: "13:00", EndTime: "12:00", IsActive: true}, // inverted
		{DayOfWeek: 1, StartTime: "15:00", EndTime: "17:00", IsActive: true},
	}
	monday := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	got := AvailableSlots(windows, monday, now)
	expected := []string{"15:00", "16:00"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}
