package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artigadental/models"
)

func validRequest() BookingRequest {
	return BookingRequest{
		Name:     "María Pérez",
		Email:    "maria@example.com",
		Phone:    "+503 7777 7777",
		Service:  "Limpieza Dental",
		Date:     monday.String(),
		Time:     "10:00 AM",
		AutoBook: true,
	}
}

func TestBook_MissingRequiredFields(t *testing.T) {
	engine := newTestEngine(&fakeReservationRepo{})
	req := validRequest()
	req.Email = ""
	_, err := engine.Book(context.Background(), req, time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestBook_InquiryServiceIsManualFollowUp(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := newTestEngine(repo)

	req := validRequest()
	req.Service = "Ortodoncia"
	// Date and time are present but must be ignored for inquiry services.
	outcome, err := engine.Book(context.Background(), req, time.Now())
	require.NoError(t, err)

	assert.True(t, outcome.ManualFollowUp)
	assert.Equal(t, models.ReservationStatusPending, outcome.Reservation.Status)
	assert.Nil(t, outcome.Reservation.StartTime)
	assert.Nil(t, outcome.Reservation.EndTime)
	require.Len(t, repo.reservations, 1)
}

func TestBook_UnknownServiceFallsBackToInquiry(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := newTestEngine(repo)

	req := validRequest()
	req.Service = "Consulta General"
	outcome, err := engine.Book(context.Background(), req, time.Now())
	require.NoError(t, err)
	assert.True(t, outcome.ManualFollowUp)
	assert.Nil(t, outcome.Reservation.StartTime)
}

func TestBook_AutoBookRequiresDateAndTime(t *testing.T) {
	engine := newTestEngine(&fakeReservationRepo{})

	req := validRequest()
	req.Time = ""
	_, err := engine.Book(context.Background(), req, time.Now())
	require.Error(t, err)
	assert.True(t, IsInvalidSlot(err))

	req = validRequest()
	req.Date = ""
	_, err = engine.Book(context.Background(), req, time.Now())
	require.Error(t, err)
	assert.True(t, IsInvalidSlot(err))
}

func TestBook_RejectsArbitraryTimes(t *testing.T) {
	engine := newTestEngine(&fakeReservationRepo{})

	// 10:30 is not an hourly slot start.
	req := validRequest()
	req.Time = "10:30 AM"
	_, err := engine.Book(context.Background(), req, time.Now())
	require.Error(t, err)
	assert.True(t, IsInvalidSlot(err))

	// Sunday is closed, so no time is valid there.
	req = validRequest()
	req.Date = sunday.String()
	_, err = engine.Book(context.Background(), req, time.Now())
	require.Error(t, err)
	assert.True(t, IsInvalidSlot(err))

	// 4:00 PM would end after close.
	req = validRequest()
	req.Time = "4:00 PM"
	_, err = engine.Book(context.Background(), req, time.Now())
	require.Error(t, err)
	assert.True(t, IsInvalidSlot(err))
}

func TestBook_ConfirmsAndDerivesUTCInterval(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := newTestEngine(repo)

	outcome, err := engine.Book(context.Background(), validRequest(), time.Now())
	require.NoError(t, err)

	assert.False(t, outcome.ManualFollowUp)
	r := outcome.Reservation
	assert.Equal(t, models.ReservationStatusConfirmed, r.Status)
	require.True(t, r.Timed())
	// 10:00 clinic time at UTC-6 is 16:00 UTC.
	assert.Equal(t, time.Date(2026, time.March, 2, 16, 0, 0, 0, time.UTC), r.StartTime.UTC())
	assert.Equal(t, time.Hour, r.EndTime.Sub(*r.StartTime))
	require.Len(t, repo.reservations, 1)
}

func TestBook_ConflictDoesNotWrite(t *testing.T) {
	policy := testPolicy()
	start := policy.SlotStartUTC(monday, 10*60)
	repo := &fakeReservationRepo{}
	repo.reservations = append(repo.reservations, timedReservation(start, start.Add(time.Hour)))
	engine := newTestEngine(repo)

	_, err := engine.Book(context.Background(), validRequest(), time.Now())
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Len(t, repo.reservations, 1, "losing booking must leave no record")
}

func TestBook_StoreFailureLeavesNoPartialState(t *testing.T) {
	repo := &fakeReservationRepo{failInsert: true}
	engine := newTestEngine(repo)

	_, err := engine.Book(context.Background(), validRequest(), time.Now())
	require.Error(t, err)
	assert.True(t, IsStore(err))
	assert.Empty(t, repo.reservations)
}

func TestBook_ConcurrentSameSlot(t *testing.T) {
	// Two racing bookings for the identical slot: exactly one commits, the
	// other observes a conflict. The fake repo checks and appends under one
	// lock, matching the guarantee the unique slot index gives the Mongo repo.
	repo := &fakeReservationRepo{}
	engine := newTestEngine(repo)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = engine.Book(context.Background(), validRequest(), time.Now())
		}(i)
	}
	wg.Wait()

	accepted, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			accepted++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, repo.reservations, 1)
}
