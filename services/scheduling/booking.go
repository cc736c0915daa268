package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	reservationRepo "artigadental/database/repository/reservation"
	"artigadental/models"
)

// BookingRequest carries one appointment submission. Date and Time use the
// wire formats ("YYYY-MM-DD", "9:00 AM") and are only required when AutoBook
// is set.
type BookingRequest struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Service  string
	Date     string
	Time     string
	AutoBook bool
}

// BookingOutcome is the result of an accepted booking. ManualFollowUp is set
// for inquiry-only services where the clinic calls the patient back instead
// of reserving a concrete slot.
type BookingOutcome struct {
	Reservation    models.Reservation
	ManualFollowUp bool
}

// Book validates and persists an appointment request.
//
// For auto-bookable services the chosen time must be one the slot generator
// would emit for that date and service, the absolute interval is re-derived
// through the same fixed-offset conversion the resolver uses, and the
// conflict re-check plus insert run atomically in the repository. A lost race
// surfaces as a conflict error, not a double booking.
func (e *Engine) Book(ctx context.Context, req BookingRequest, now time.Time) (*BookingOutcome, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Service == "" {
		return nil, NewValidationError("name, email, phone and service are required")
	}

	svc, known := e.Catalogue.ByDisplayName(req.Service)
	autoBook := req.AutoBook && known && svc.AutoBookable && svc.DurationMinutes > 0

	reservation := models.Reservation{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		ServiceType: req.Service,
		Status:      models.ReservationStatusPending,
		CreatedAt:   now.UTC(),
	}

	if !autoBook {
		if err := e.Repo.Insert(ctx, &reservation); err != nil {
			return nil, NewStoreError(err)
		}
		return &BookingOutcome{Reservation: reservation, ManualFollowUp: true}, nil
	}

	if req.Date == "" || req.Time == "" {
		return nil, NewInvalidSlotError("date and time are required for direct booking")
	}
	date, err := ParseCivilDate(req.Date)
	if err != nil {
		return nil, NewInvalidSlotError(err.Error())
	}
	minute, err := ParseClock12(req.Time)
	if err != nil {
		return nil, NewInvalidSlotError(err.Error())
	}
	if !slotExists(e.Policy, date, svc.DurationMinutes, minute) {
		return nil, NewInvalidSlotError("requested time is not a bookable slot")
	}

	start := e.Policy.SlotStartUTC(date, minute)
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	reservation.StartTime = &start
	reservation.EndTime = &end
	reservation.Status = models.ReservationStatusConfirmed

	if err := e.Repo.InsertIfFree(ctx, &reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrConflict) {
			return nil, NewConflictError()
		}
		return nil, NewStoreError(err)
	}
	return &BookingOutcome{Reservation: reservation}, nil
}

// slotExists guards against a client submitting an arbitrary time: only
// starts the generator would produce for this date and duration are valid.
func slotExists(policy ClinicPolicy, date CivilDate, durationMinutes, minute int) bool {
	for _, t := range GenerateSlots(policy, date, durationMinutes) {
		if t == minute {
			return true
		}
	}
	return false
}
