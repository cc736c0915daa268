package models

import "time"

// Reservation statuses.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
)

// Reservation represents an appointment record as persisted.
// Start/End are nil for inquiry-only requests that a receptionist
// schedules manually.
type Reservation struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Email       string     `bson:"email" json:"email"`
	Phone       string     `bson:"phone" json:"phone"`
	Message     string     `bson:"message,omitempty" json:"message,omitempty"`
	ServiceType string     `bson:"service_type" json:"service_type"`
	StartTime   *time.Time `bson:"start_time" json:"start_time"`
	EndTime     *time.Time `bson:"end_time" json:"end_time"`
	Status      string     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}

// Timed reports whether the reservation occupies a concrete time range.
func (r *Reservation) Timed() bool {
	return r.StartTime != nil && r.EndTime != nil
}
