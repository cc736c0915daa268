package notification

import (
	"context"

	"artigadental/models"
)

// NotificationService sends appointment emails. Delivery is best effort:
// callers log failures and never let them change a booking outcome.
type NotificationService interface {
	// NotifyAppointment sends the clinic a heads-up and the patient a
	// confirmation for a freshly accepted reservation.
	NotifyAppointment(ctx context.Context, r models.Reservation, dateLabel, timeLabel string) error
}
