package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"artigadental/config"
	"artigadental/models"
	"artigadental/services/notification"
	"artigadental/utils"
)

const TypeAppointmentMail = "appointment:mail"

// MailTask is the queued payload for appointment notification emails.
type MailTask struct {
	Reservation models.Reservation `json:"reservation"`
	DateLabel   string             `json:"dateLabel"`
	TimeLabel   string             `json:"timeLabel"`
}

var mailClient *asynq.Client

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
}

// InitMailWorker starts the background worker that delivers queued
// appointment emails with retry. Delivery failures are retried by asynq and
// ultimately dropped; they never affect a booking outcome.
func InitMailWorker(notifSvc notification.NotificationService) {
	logger := utils.GetLogger()
	mailClient = asynq.NewClient(redisOpts())

	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentMail, handleMailTask(notifSvc))

	go func() {
		logger.Info("mail worker starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("mail worker stopped", zap.Error(err))
		}
	}()
}

// EnqueueAppointmentMail queues notification emails for an accepted
// reservation. Best effort: on enqueue failure the caller logs and moves on.
func EnqueueAppointmentMail(r models.Reservation, dateLabel, timeLabel string) error {
	if mailClient == nil {
		return fmt.Errorf("mail worker not initialized")
	}
	payload, err := json.Marshal(MailTask{Reservation: r, DateLabel: dateLabel, TimeLabel: timeLabel})
	if err != nil {
		return fmt.Errorf("failed to marshal mail task: %w", err)
	}
	if _, err := mailClient.Enqueue(asynq.NewTask(TypeAppointmentMail, payload), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue mail task: %w", err)
	}
	return nil
}

func handleMailTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		var t MailTask
		if err := json.Unmarshal(task.Payload(), &t); err != nil {
			logger.Error("invalid mail task payload", zap.Error(err))
			return err
		}
		if notifSvc == nil {
			logger.Debug("notifications disabled, dropping mail task",
				zap.String("reservationID", t.Reservation.ID))
			return nil
		}
		return notifSvc.NotifyAppointment(ctx, t.Reservation, t.DateLabel, t.TimeLabel)
	}
}
