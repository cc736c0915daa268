package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	reservationRepo "artigadental/database/repository/reservation"
	"artigadental/models"
)

// fakeReservationRepo is an in-memory Repository whose InsertIfFree holds a
// lock across the conflict check and the append, mirroring the atomic
// check-and-insert contract the Mongo implementation gets from its unique
// slot index.
type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []models.Reservation
	failFind     bool
	failInsert   bool
	findCalls    int
}

var errRepoDown = errors.New("repo down")

func (f *fakeReservationRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeReservationRepo) FindOverlapping(ctx context.Context, windowStart, windowEnd time.Time) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.failFind {
		return nil, errRepoDown
	}
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.Timed() && r.StartTime.Before(windowEnd) && windowStart.Before(*r.EndTime) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Insert(ctx context.Context, r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return errRepoDown
	}
	f.reservations = append(f.reservations, *r)
	return nil
}

func (f *fakeReservationRepo) InsertIfFree(ctx context.Context, r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return errRepoDown
	}
	for _, existing := range f.reservations {
		if !existing.Timed() {
			continue
		}
		if r.StartTime.Before(*existing.EndTime) && existing.StartTime.Before(*r.EndTime) {
			return reservationRepo.ErrConflict
		}
	}
	f.reservations = append(f.reservations, *r)
	return nil
}

func (f *fakeReservationRepo) List(ctx context.Context, from, to *time.Time) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Reservation(nil), f.reservations...), nil
}

func timedReservation(start, end time.Time) models.Reservation {
	return models.Reservation{
		ID:          "existing",
		Name:        "Existing Patient",
		Email:       "existing@example.com",
		Phone:       "+503 0000 0000",
		ServiceType: "Limpieza Dental",
		StartTime:   &start,
		EndTime:     &end,
		Status:      models.ReservationStatusConfirmed,
		CreatedAt:   start.Add(-24 * time.Hour),
	}
}

// prevSunday is the Sunday immediately before the test Monday.
var prevSunday = CivilDate{Year: 2026, Month: time.March, Day: 1}

func newTestEngine(repo reservationRepo.Repository) *Engine {
	return &Engine{
		Policy:    testPolicy(),
		Catalogue: models.DefaultServiceCatalogue(),
		Repo:      repo,
	}
}
