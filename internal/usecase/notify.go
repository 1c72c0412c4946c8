package usecase

import (
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notifier sends best-effort booking emails. Failures are logged, never
// returned to the caller.
type Notifier interface {
	BookingCreated(booking *entity.Booking)
	StatusChanged(booking *entity.Booking)
}

type mailNotifier struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewMailNotifier(config utils.EmailConfig, log *zap.Logger) Notifier {
	return &mailNotifier{
		config: config,
		log:    log.With(zap.String("notifier", "mail")),
	}
}

func hallName(hall entity.Hall) string {
	if hall == entity.HallSmall {
		return "Intimate Hall"
	}
	return "Grand Ballroom"
}

func (n *mailNotifier) BookingCreated(booking *entity.Booking) {
	subject := fmt.Sprintf("Booking Received - %s", hallName(booking.Hall))
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Thank you for your booking request.\r\n\r\n"+
			"Booking ID: %s\r\n"+
			"Hall: %s\r\n"+
			"Date: %s\r\n"+
			"Guests: %d\r\n"+
			"Total: %.2f\r\n"+
			"Deposit due: %.2f\r\n\r\n"+
			"We will confirm your reservation shortly.\r\n",
		booking.Name, booking.ID, hallName(booking.Hall), booking.Date,
		booking.Guests, booking.Total, booking.Deposit,
	)

	n.send(booking.Email, subject, body)
}

func (n *mailNotifier) StatusChanged(booking *entity.Booking) {
	subject := fmt.Sprintf("Booking %s - %s", booking.Status, hallName(booking.Hall))
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Your booking %s for %s on %s is now %s.\r\n",
		booking.Name, booking.ID, hallName(booking.Hall), booking.Date, booking.Status,
	)

	n.send(booking.Email, subject, body)
}

func (n *mailNotifier) send(to, subject, body string) {
	if n.config.Host == "" {
		n.log.Debug("SMTP not configured, skipping email", zap.String("subject", subject))
		return
	}

	// Async so sending never delays the response
	go func() {
		m := gomail.NewMessage()
		m.SetHeader("From", n.config.From)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(n.config.Host, n.config.Port, n.config.User, n.config.Password)
		if err := d.DialAndSend(m); err != nil {
			n.log.Error("Failed to send email",
				zap.Error(err),
				zap.String("to", to),
				zap.String("subject", subject),
			)
			return
		}

		n.log.Info("Email sent",
			zap.String("to", to),
			zap.String("subject", subject),
		)
	}()
}
