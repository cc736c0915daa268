package scheduling

// GenerateSlots produces the ordered candidate slot start times (minutes from
// local midnight) for one calendar day and service duration. Pure function of
// its inputs: no clock, no I/O.
//
// A slot whose end lands exactly on the closing minute is included, so a
// 60-minute service on a 09:00-16:00 day yields 09:00 through 15:00.
func GenerateSlots(policy ClinicPolicy, date CivilDate, durationMinutes int) []int {
	if durationMinutes <= 0 {
		return nil
	}
	hours := policy.HoursFor(date.Weekday())
	if hours == nil {
		return nil
	}
	step := policy.SlotGranularityMinutes
	if step <= 0 {
		return nil
	}

	// Compare against close-duration rather than t+duration so an absurdly
	// large duration cannot overflow the bound and keep the loop alive.
	last := hours.CloseMinute - durationMinutes
	var slots []int
	for t := hours.OpenMinute; t <= last; t += step {
		slots = append(slots, t)
	}
	return slots
}
