package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"artigadental/database"
	"artigadental/models"
	"artigadental/utils"
)

// MongoReservationRepo implements Repository on the appointments collection.
type MongoReservationRepo struct {
	coll *mongo.Collection

	// useTransactions is cleared after the first session failure so a
	// standalone Mongo (no replica set) degrades to plain check-then-insert
	// instead of failing every booking. Atomic: bookings run concurrently.
	useTransactions atomic.Bool
}

// NewMongoReservationRepo returns a repo backed by the global Mongo client.
func NewMongoReservationRepo() *MongoReservationRepo {
	repo := &MongoReservationRepo{coll: database.Collection("appointments")}
	repo.useTransactions.Store(true)
	return repo
}

func (repo *MongoReservationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Timed reservations are unique per start instant. Candidate starts
		// come from a fixed grid, so two bookings colliding on the same slot
		// always carry the same start_time and the second insert fails with a
		// duplicate-key error regardless of isolation level. Partial filter:
		// inquiry reservations have no start_time and must not collide.
		{
			Keys: bson.D{{Key: "start_time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"start_time": bson.M{"$type": "date"}}),
		},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}

// overlapFilter matches timed reservations intersecting [start, end) under
// half-open semantics: existing.start < end AND existing.end > start.
func overlapFilter(start, end time.Time) bson.M {
	return bson.M{
		"start_time": bson.M{"$ne": nil, "$lt": end},
		"end_time":   bson.M{"$ne": nil, "$gt": start},
	}
}

func (repo *MongoReservationRepo) FindOverlapping(ctx context.Context, windowStart, windowEnd time.Time) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, overlapFilter(windowStart, windowEnd), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

func (repo *MongoReservationRepo) Insert(ctx context.Context, r *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, r); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (repo *MongoReservationRepo) InsertIfFree(ctx context.Context, r *models.Reservation) error {
	if !r.Timed() {
		return errors.New("InsertIfFree requires a timed reservation")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if repo.useTransactions.Load() {
		err := repo.insertIfFreeTxn(ctx, r)
		if err == nil || errors.Is(err, ErrConflict) {
			return err
		}
		if isSessionUnsupported(err) {
			utils.GetLogger().Warn("mongo sessions unavailable, relying on the unique slot index alone",
				zap.Error(err))
			repo.useTransactions.Store(false)
		} else {
			return err
		}
	}

	// No-session path: the pre-check and insert are separate operations, but
	// the unique start_time index still rejects a same-slot race at insert.
	free, err := repo.intervalFree(ctx, *r.StartTime, *r.EndTime)
	if err != nil {
		return err
	}
	if !free {
		return ErrConflict
	}
	if _, err := repo.coll.InsertOne(ctx, r); err != nil {
		return mapInsertError(err)
	}
	return nil
}

// insertIfFreeTxn re-checks for conflicts and inserts inside one
// multi-document transaction. Snapshot isolation alone does not serialize two
// inserts of distinct documents, so the same-slot race is actually closed by
// the unique start_time index: the loser's insert fails with a duplicate key,
// which maps to ErrConflict. The transactional count still catches overlaps
// between slots with different start instants.
func (repo *MongoReservationRepo) insertIfFreeTxn(ctx context.Context, r *models.Reservation) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		free, err := repo.intervalFree(sc, *r.StartTime, *r.EndTime)
		if err != nil {
			return err
		}
		if !free {
			return ErrConflict
		}
		if _, err := repo.coll.InsertOne(sc, r); err != nil {
			return mapInsertError(err)
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return fmt.Errorf("could not start transaction: %w", err)
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

func (repo *MongoReservationRepo) intervalFree(ctx context.Context, start, end time.Time) (bool, error) {
	count, err := repo.coll.CountDocuments(ctx, overlapFilter(start, end))
	if err != nil {
		return false, fmt.Errorf("failed to count overlapping reservations: %w", err)
	}
	return count == 0, nil
}

func (repo *MongoReservationRepo) List(ctx context.Context, from, to *time.Time) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if from != nil || to != nil {
		window := bson.M{}
		if from != nil {
			window["$gte"] = *from
		}
		if to != nil {
			window["$lt"] = *to
		}
		filter["start_time"] = window
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// mapInsertError turns a duplicate-key violation of the unique start_time
// index into ErrConflict; anything else is a store failure.
func mapInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return fmt.Errorf("failed to insert reservation: %w", err)
}

func isSessionUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// IllegalOperation: transaction numbers only allowed on replica sets.
		return cmdErr.Code == 20
	}
	return false
}
