package reservationRepo

import (
	"context"
	"errors"
	"time"

	"artigadental/models"
)

// ErrConflict is returned by InsertIfFree when another reservation already
// occupies part of the requested interval.
var ErrConflict = errors.New("reservation interval conflict")

// Repository is the persistence boundary of the booking engine.
type Repository interface {
	// EnsureIndexes creates the indexes the queries below rely on.
	EnsureIndexes(ctx context.Context) error

	// FindOverlapping returns all timed reservations whose [start,end)
	// interval intersects [windowStart, windowEnd). Inquiry-only rows with
	// null times are excluded.
	FindOverlapping(ctx context.Context, windowStart, windowEnd time.Time) ([]models.Reservation, error)

	// Insert persists a reservation without any conflict check. Used for
	// inquiry-only requests that carry no time range.
	Insert(ctx context.Context, r *models.Reservation) error

	// InsertIfFree persists a timed reservation only if no existing timed
	// reservation overlaps it, re-checking and inserting atomically where
	// the store supports multi-document transactions. Returns ErrConflict
	// when the interval is taken.
	InsertIfFree(ctx context.Context, r *models.Reservation) error

	// List returns reservations created for the desk view, newest first,
	// optionally bounded by start time.
	List(ctx context.Context, from, to *time.Time) ([]models.Reservation, error)
}
