package scheduling

import "time"

// DayHours is an open/close range expressed as minutes from local midnight.
type DayHours struct {
	OpenMinute  int
	CloseMinute int
}

// ClinicPolicy carries the clinic's static schedule rules. It is built once
// at startup and passed explicitly into the slot generator and the engine so
// tests can substitute alternate hours or offsets.
type ClinicPolicy struct {
	// UTCOffsetMinutes is the clinic's fixed offset from UTC. No DST
	// transitions are modeled; every day shifts by the same constant.
	UTCOffsetMinutes int

	// WeeklyHours maps weekday (0=Sunday .. 6=Saturday) to open hours.
	// A nil entry means the clinic is closed that day.
	WeeklyHours [7]*DayHours

	// SlotGranularityMinutes is the step between candidate slot starts.
	SlotGranularityMinutes int
}

// DefaultClinicPolicy returns the clinic's production schedule:
// Mon-Fri 09:00-16:00, Sat 09:00-12:00, Sun closed, hourly slots.
func DefaultClinicPolicy(utcOffsetMinutes int) ClinicPolicy {
	weekday := &DayHours{OpenMinute: 9 * 60, CloseMinute: 16 * 60}
	saturday := &DayHours{OpenMinute: 9 * 60, CloseMinute: 12 * 60}
	return ClinicPolicy{
		UTCOffsetMinutes: utcOffsetMinutes,
		WeeklyHours: [7]*DayHours{
			nil,      // Sunday
			weekday,  // Monday
			weekday,  // Tuesday
			weekday,  // Wednesday
			weekday,  // Thursday
			weekday,  // Friday
			saturday, // Saturday
		},
		SlotGranularityMinutes: 60,
	}
}

// HoursFor returns the open hours for the given weekday, or nil when closed.
func (p ClinicPolicy) HoursFor(weekday time.Weekday) *DayHours {
	return p.WeeklyHours[int(weekday)]
}

// Location returns the clinic's fixed-offset location. All wall-clock
// arithmetic in this package goes through this single conversion point.
func (p ClinicPolicy) Location() *time.Location {
	return time.FixedZone("clinic", p.UTCOffsetMinutes*60)
}
