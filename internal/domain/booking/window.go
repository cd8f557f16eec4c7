package booking

import (
	"time"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

// ===============================
// Time-Window Validator
// ===============================

// DurationHours returns the booking length in whole hours; 0 when the
// interval is not a positive whole number of hours.
func DurationHours(start, end time.Time) int {
	d := end.Sub(start)
	if d < time.Hour || d%time.Hour != 0 {
		return 0
	}
	return int(d / time.Hour)
}

// ValidateWindow checks a candidate interval against the clock and the
// tutor's declared weekly windows for the start day. The availability
// containment is hour-granular: the request occupies clock hours
// [start.Hour(), end.Hour()), with an end carrying minutes rounded up a
// full hour. Finer minute boundaries are deliberately not inspected.
func ValidateWindow(start, end, now time.Time, windows []models.Availability) error {
	if !start.After(now) {
		return httperr.ErrBusiness("start_in_past")
	}

	if !end.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	if DurationHours(start, end) == 0 {
		return httperr.ErrBusiness("non_whole_hour_duration")
	}

	reqStart := start.Hour()
	reqEnd := end.Hour()
	if end.Minute() > 0 || end.Second() > 0 {
		reqEnd++
	}

	weekday := int(start.Weekday())
	for _, w := range windows {
		if w.Weekday != weekday {
			continue
		}

		ws, okStart := parseHour(w.StartTime)
		we, okEnd := parseHour(w.EndTime)
		if !okStart || !okEnd {
			continue
		}

		if reqStart >= ws && reqEnd <= we {
			return nil
		}
	}

	return httperr.ErrBusiness("outside_availability")
}

// ===============================
// Availability slots
// ===============================

// ValidateSlot checks a single availability window as declared by a tutor.
func ValidateSlot(weekday int, startTime, endTime string) error {
	if weekday < 0 || weekday > 6 {
		return httperr.ErrBusiness("invalid_weekday")
	}

	s, err := time.Parse("15:04", startTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_format")
	}

	e, err := time.Parse("15:04", endTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_format")
	}

	if !e.After(s) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	if e.Sub(s) < time.Hour {
		return httperr.ErrBusiness("slot_too_short")
	}

	return nil
}

// SlotsOverlap reports whether two windows on the same weekday intersect.
func SlotsOverlap(a, b models.Availability) bool {
	if a.Weekday != b.Weekday {
		return false
	}

	as, _ := time.Parse("15:04", a.StartTime)
	ae, _ := time.Parse("15:04", a.EndTime)
	bs, _ := time.Parse("15:04", b.StartTime)
	be, _ := time.Parse("15:04", b.EndTime)

	return as.Before(be) && bs.Before(ae)
}

func parseHour(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}
