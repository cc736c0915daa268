package scheduling

import (
	"context"
	"time"

	reservationRepo "artigadental/database/repository/reservation"
	"artigadental/models"
)

// Slot statuses reported to the client.
const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	SlotPast      = "past"
)

// Slot is one candidate appointment start with its computed status. Never
// persisted; recomputed on every request.
type Slot struct {
	Minute int
	Status string
}

// Engine combines the pure slot generator with the reservation store. The
// policy and catalogue are injected so tests can substitute alternate hours,
// offsets, and services.
type Engine struct {
	Policy    ClinicPolicy
	Catalogue models.ServiceCatalogue
	Repo      reservationRepo.Repository
}

// ResolveAvailability classifies every candidate slot of the given clinic day
// as available, booked, or past. The current instant is a parameter, not an
// ambient clock read, so the classification is deterministic under test.
func (e *Engine) ResolveAvailability(ctx context.Context, date CivilDate, durationMinutes int, now time.Time) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, NewValidationError("duration must be positive")
	}

	starts := GenerateSlots(e.Policy, date, durationMinutes)
	if len(starts) == 0 {
		return []Slot{}, nil
	}

	local := e.Policy.ClinicNow(now)
	today := CivilDateOf(local)
	nowMinute := local.Hour()*60 + local.Minute()

	slots := make([]Slot, len(starts))
	anyFuture := false
	for i, t := range starts {
		status := SlotAvailable
		// A slot starting at the exact current minute counts as past.
		if date.Before(today) || (date == today && t <= nowMinute) {
			status = SlotPast
		} else {
			anyFuture = true
		}
		slots[i] = Slot{Minute: t, Status: status}
	}
	if !anyFuture {
		return slots, nil
	}

	// Window a full day on either side of the clinic day so no stored
	// interval near midnight escapes the offset conversion.
	dayStart := e.Policy.SlotStartUTC(date, 0)
	existing, err := e.Repo.FindOverlapping(ctx, dayStart.Add(-24*time.Hour), dayStart.Add(48*time.Hour))
	if err != nil {
		return nil, NewStoreError(err)
	}

	for i := range slots {
		if slots[i].Status == SlotPast {
			continue
		}
		start := e.Policy.SlotStartUTC(date, slots[i].Minute)
		end := start.Add(time.Duration(durationMinutes) * time.Minute)
		if overlapsAny(start, end, existing) {
			slots[i].Status = SlotBooked
		}
	}
	return slots, nil
}

// overlapsAny reports whether [start, end) intersects any timed reservation,
// using half-open semantics: a < d && c < b.
func overlapsAny(start, end time.Time, existing []models.Reservation) bool {
	for _, r := range existing {
		if !r.Timed() {
			continue
		}
		if start.Before(*r.EndTime) && r.StartTime.Before(end) {
			return true
		}
	}
	return false
}
