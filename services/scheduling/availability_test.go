package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clinicInstant builds an absolute instant from clinic wall-clock components.
func clinicInstant(p ClinicPolicy, d CivilDate, hour, minute int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, p.Location())
}

func TestResolveAvailability_AllFutureAllFree(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := newTestEngine(repo)

	// Sunday evening before the target Monday.
	now := clinicInstant(engine.Policy, prevSunday, 20, 0)
	slots, err := engine.ResolveAvailability(context.Background(), monday, 60, now)
	require.NoError(t, err)
	require.Len(t, slots, 7)
	for _, s := range slots {
		assert.Equal(t, SlotAvailable, s.Status)
	}
	// Ascending by start time.
	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i].Minute, slots[i-1].Minute)
	}
}

func TestResolveAvailability_PastClassification(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := newTestEngine(repo)

	// Monday 11:00 sharp, clinic time. 09:00 and 10:00 are gone; 11:00 starts
	// at the exact current minute and counts as past too; 12:00 onward is open.
	now := clinicInstant(engine.Policy, monday, 11, 0)
	slots, err := engine.ResolveAvailability(context.Background(), monday, 60, now)
	require.NoError(t, err)
	require.Len(t, slots, 7)

	assert.Equal(t, SlotPast, slots[0].Status)
	assert.Equal(t, SlotPast, slots[1].Status)
	assert.Equal(t, SlotPast, slots[2].Status)
	for _, s := range slots[3:] {
		assert.Equal(t, SlotAvailable, s.Status)
	}
}

func TestResolveAvailability_EarlierDateIsAllPast(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := newTestEngine(repo)

	now := clinicInstant(engine.Policy, saturday, 8, 0)
	slots, err := engine.ResolveAvailability(context.Background(), monday, 60, now)
	require.NoError(t, err)
	require.Len(t, slots, 7)
	for _, s := range slots {
		assert.Equal(t, SlotPast, s.Status)
	}
	// An all-past day needs no store roundtrip.
	assert.Zero(t, repo.findCalls)
}

func TestResolveAvailability_OverlapMarksBooked(t *testing.T) {
	policy := testPolicy()
	// Existing reservation 10:00-11:00 clinic time on the target Monday.
	start := policy.SlotStartUTC(monday, 10*60)
	end := start.Add(time.Hour)
	repo := &fakeReservationRepo{}
	repo.reservations = append(repo.reservations, timedReservation(start, end))
	engine := newTestEngine(repo)

	now := clinicInstant(policy, prevSunday, 20, 0)
	slots, err := engine.ResolveAvailability(context.Background(), monday, 60, now)
	require.NoError(t, err)
	require.Len(t, slots, 7)

	assert.Equal(t, SlotAvailable, slots[0].Status) // 09:00
	assert.Equal(t, SlotBooked, slots[1].Status)    // 10:00 collides
	assert.Equal(t, SlotAvailable, slots[2].Status) // 11:00 starts at the existing end
}

func TestResolveAvailability_HalfOpenIntervals(t *testing.T) {
	// With 30-minute granularity a [10:30,11:00) candidate overlaps an
	// existing [10:00,11:00) but [11:00,11:30) does not.
	policy := testPolicy()
	policy.SlotGranularityMinutes = 30

	start := policy.SlotStartUTC(monday, 10*60)
	end := start.Add(time.Hour)
	repo := &fakeReservationRepo{}
	repo.reservations = append(repo.reservations, timedReservation(start, end))
	engine := newTestEngine(repo)
	engine.Policy = policy

	now := clinicInstant(policy, prevSunday, 20, 0)
	slots, err := engine.ResolveAvailability(context.Background(), monday, 30, now)
	require.NoError(t, err)

	byMinute := map[int]string{}
	for _, s := range slots {
		byMinute[s.Minute] = s.Status
	}
	assert.Equal(t, SlotBooked, byMinute[10*60+30])
	assert.Equal(t, SlotAvailable, byMinute[11*60])
}

func TestResolveAvailability_Idempotent(t *testing.T) {
	policy := testPolicy()
	start := policy.SlotStartUTC(monday, 13*60)
	repo := &fakeReservationRepo{}
	repo.reservations = append(repo.reservations, timedReservation(start, start.Add(time.Hour)))
	engine := newTestEngine(repo)

	now := clinicInstant(policy, monday, 10, 30)
	first, err := engine.ResolveAvailability(context.Background(), monday, 60, now)
	require.NoError(t, err)
	second, err := engine.ResolveAvailability(context.Background(), monday, 60, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveAvailability_ClosedDay(t *testing.T) {
	engine := newTestEngine(&fakeReservationRepo{})
	now := clinicInstant(engine.Policy, saturday, 8, 0)
	slots, err := engine.ResolveAvailability(context.Background(), sunday, 60, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveAvailability_StoreFailure(t *testing.T) {
	engine := newTestEngine(&fakeReservationRepo{failFind: true})
	now := clinicInstant(engine.Policy, prevSunday, 20, 0)
	_, err := engine.ResolveAvailability(context.Background(), monday, 60, now)
	require.Error(t, err)
	assert.True(t, IsStore(err), "store failure must not report slots as free")
}

func TestResolveAvailability_InvalidDuration(t *testing.T) {
	engine := newTestEngine(&fakeReservationRepo{})
	_, err := engine.ResolveAvailability(context.Background(), monday, 0, time.Now())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
