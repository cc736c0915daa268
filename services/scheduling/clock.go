package scheduling

import (
	"fmt"
	"time"
)

// CivilDate is a calendar date with no time component.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCivilDate parses a "YYYY-MM-DD" string.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// CivilDateOf extracts the calendar date from an instant, in that
// instant's location.
func CivilDateOf(t time.Time) CivilDate {
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of the week for this date.
func (d CivilDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d falls strictly before other.
func (d CivilDate) Before(other CivilDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// SlotStartUTC converts a clinic-local (date, minute-of-day) pair to its
// absolute UTC instant using the policy's fixed offset. Both the availability
// resolver and the booking transaction derive intervals through here, so the
// two can never disagree on what a slot means.
func (p ClinicPolicy) SlotStartUTC(d CivilDate, minuteOfDay int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, minuteOfDay/60, minuteOfDay%60, 0, 0, p.Location()).UTC()
}

// ClinicNow converts an absolute instant to the clinic's wall clock.
func (p ClinicPolicy) ClinicNow(now time.Time) time.Time {
	return now.In(p.Location())
}

// FormatClock12 renders a minute-of-day as the 12-hour display string used
// on the wire, e.g. 540 -> "9:00 AM".
func FormatClock12(minuteOfDay int) string {
	t := time.Date(0, time.January, 1, minuteOfDay/60, minuteOfDay%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// ParseClock12 parses a 12-hour display string back into a minute-of-day.
// Both "9:00 AM" and "09:00 AM" are accepted; the zero-padded form is what
// the original site's frontend emits.
func ParseClock12(s string) (int, error) {
	for _, layout := range []string{"3:04 PM", "03:04 PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q", s)
}
