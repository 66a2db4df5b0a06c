package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mentorhub/career_mentor/models"
)

// Spacing between generated slot start times.
const slotSpacingMinutes = 60

// defaultDaySlots is offered when a mentor has not configured any
// availability windows yet.
var defaultDaySlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// AvailableSlots returns the bookable HH:MM start times for a mentor on the
// given date. Active windows matching the date's weekday are expanded at the
// slot cadence; a mentor without windows gets the default day. Dates before
// today yield nothing.
func AvailableSlots(windows []models.AvailabilityWindow, date time.Time, now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return []string{}
	}

	var dayWindows []models.AvailabilityWindow
	hasActive := false
	for _, w := range windows {
		if !w.IsActive {
			continue
		}
		hasActive = true
		if w.DayOfWeek == int(date.Weekday()) {
			dayWindows = append(dayWindows, w)
		}
	}

	if !hasActive {
		return append([]string{}, defaultDaySlots...)
	}
	if len(dayWindows) == 0 {
		return []string{}
	}

	seen := map[int]struct{}{}
	starts := []int{}
	for _, w := range dayWindows {
		from, err := t2m(w.StartTime)
		if err != nil {
			continue
		}
		to, err := t2m(w.EndTime)
		if err != nil || to <= from {
			continue
		}
		for m := from; m+slotSpacingMinutes <= to; m += slotSpacingMinutes {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			starts = append(starts, m)
		}
	}
	sort.Ints(starts)

	slots := make([]string, 0, len(starts))
	for _, m := range starts {
		slots = append(slots, m2t(m))
	}
	return slots
}

func m2t(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func t2m(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	return hours*60 + minutes, nil
}
