package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"artigadental/config"
	"artigadental/models"
	"artigadental/utils"
)

// SMTPNotificationService delivers appointment mail over the configured
// SMTP account.
type SMTPNotificationService struct {
	Dialer      *gomail.Dialer
	ClinicEmail string
	FromAddress string
}

// NewSMTPNotificationService builds the mailer from AppConfig. Returns nil
// when no SMTP credentials are configured; callers treat a nil service as
// "notifications disabled".
func NewSMTPNotificationService() *SMTPNotificationService {
	cfg := config.AppConfig
	if cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		utils.GetLogger().Warn("SMTP credentials not configured, appointment emails disabled")
		return nil
	}
	return &SMTPNotificationService{
		Dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		ClinicEmail: cfg.ClinicEmail,
		FromAddress: cfg.SMTPUser,
	}
}

func (s *SMTPNotificationService) NotifyAppointment(ctx context.Context, r models.Reservation, dateLabel, timeLabel string) error {
	logger := utils.GetLogger()
	autoBooked := r.Status == models.ReservationStatusConfirmed

	if dateLabel == "" {
		dateLabel = "No especificada"
	}
	if timeLabel == "" {
		timeLabel = "No especificada"
	}

	clinicMsg := gomail.NewMessage()
	clinicMsg.SetHeader("From", s.FromAddress)
	clinicMsg.SetHeader("To", s.ClinicEmail)
	clinicMsg.SetHeader("Subject", fmt.Sprintf("Nueva Cita: %s - %s", r.Name, r.ServiceType))
	kind := "Solicitud de Información"
	if autoBooked {
		kind = "Reserva Automática"
	}
	clinicMsg.SetBody("text/plain", fmt.Sprintf(
		"Nueva solicitud de cita recibida:\n\n"+
			"Nombre: %s\nEmail: %s\nTeléfono: %s\nServicio: %s\n"+
			"Fecha: %s\nHora: %s\nMensaje: %s\n\nTipo: %s\n",
		r.Name, r.Email, r.Phone, r.ServiceType,
		dateLabel, timeLabel, orDefault(r.Message, "Sin mensaje adicional"), kind))

	patientBody := fmt.Sprintf(
		"Hola %s,\n\nHemos recibido tu solicitud para %s.\n\n", r.Name, r.ServiceType)
	if autoBooked {
		patientBody += fmt.Sprintf("Tu cita ha sido reservada para el %s a las %s. Te esperamos.\n\n", dateLabel, timeLabel)
	} else {
		patientBody += "Gracias por tu interés. Nos pondremos en contacto contigo pronto para coordinar tu evaluación.\n\n"
	}
	patientBody += fmt.Sprintf(
		"Teléfono registrado: %s\n\nSi necesitas cambiar algo, contáctanos al +503 6185 9128.\n\n"+
			"Atentamente,\nArtiga Dental Care\n", r.Phone)

	patientMsg := gomail.NewMessage()
	patientMsg.SetHeader("From", s.FromAddress)
	patientMsg.SetHeader("To", r.Email)
	patientMsg.SetHeader("Subject", "Confirmación de Solicitud - Artiga Dental Care")
	patientMsg.SetBody("text/plain", patientBody)

	if err := s.Dialer.DialAndSend(clinicMsg, patientMsg); err != nil {
		logger.Error("failed to send appointment emails",
			zap.String("reservationID", r.ID), zap.Error(err))
		return fmt.Errorf("failed to send appointment emails: %w", err)
	}
	logger.Info("appointment emails sent", zap.String("reservationID", r.ID))
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
