package usecase

import (
	"fmt"

	"goldentouch-booking/internal/data/entity"
	"goldentouch-booking/internal/dto/request"
	"goldentouch-booking/pkg/mailer"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

// NotificationService renders HTML messages and hands them to the email
// transport. Booking and contact paths are best-effort; the ad hoc
// send-message path surfaces transport failure to its caller.
type NotificationService interface {
	SendBookingEmails(booking *entity.Booking)
	SendCustomMessage(req *request.SendMessageRequest) error
	SendContactInquiry(req *request.ContactFormRequest)
	SendCampaignMessage(campaignType, email, name string) bool
}

type notificationService struct {
	mail   MailTransport
	config *utils.Config
	log    *zap.Logger
}

func NewNotificationService(mail MailTransport, config *utils.Config, log *zap.Logger) NotificationService {
	return &notificationService{
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "notification")),
	}
}

// SendBookingEmails delivers the customer confirmation and the business
// alert for a new booking. Failures are logged and swallowed: notification
// outcome never affects the booking itself.
func (s *notificationService) SendBookingEmails(booking *entity.Booking) {
	if !s.mail.Enabled() {
		s.log.Info("booking emails skipped, transport not configured",
			zap.String("booking_id", booking.BookingID))
		return
	}

	if booking.Email != nil && *booking.Email != "" {
		subject, html, err := mailer.RenderConfirmation(booking)
		if err != nil {
			s.log.Error("failed to render confirmation email", zap.Error(err))
		} else if !s.mail.Send(*booking.Email, subject, html) {
			s.log.Error("failed to send confirmation email",
				zap.String("booking_id", booking.BookingID))
		}
	} else {
		s.log.Info("customer email not provided, skipping confirmation",
			zap.String("booking_id", booking.BookingID))
	}

	if s.config.Email.BusinessEmail == "" {
		s.log.Info("business email not configured, skipping business notification")
		return
	}

	subject, html, err := mailer.RenderBusinessAlert(booking)
	if err != nil {
		s.log.Error("failed to render business alert", zap.Error(err))
		return
	}
	if !s.mail.Send(s.config.Email.BusinessEmail, subject, html) {
		s.log.Error("failed to send business alert",
			zap.String("booking_id", booking.BookingID))
	}
}

// SendCustomMessage delivers one ad hoc message; transport failure is an
// error here, the admin wants to know the message did not go out.
func (s *notificationService) SendCustomMessage(req *request.SendMessageRequest) error {
	html, err := mailer.RenderCustomMessage(req.ToName, req.CustomerID, req.Subject, req.Message)
	if err != nil {
		s.log.Error("failed to render custom message", zap.Error(err))
		return fmt.Errorf("failed to render message")
	}

	if !s.mail.Send(req.ToEmail, req.Subject, html) {
		return fmt.Errorf("failed to send email")
	}

	return nil
}

// SendContactInquiry forwards a website contact form to the business inbox.
// Best-effort: callers fire it in the background and move on.
func (s *notificationService) SendContactInquiry(req *request.ContactFormRequest) {
	to := s.config.Email.BusinessEmail
	if to == "" {
		to = s.config.Email.User
	}
	if to == "" {
		s.log.Warn("contact inquiry dropped, no business email configured")
		return
	}

	subject, html, err := mailer.RenderContactInquiry(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		s.log.Error("failed to render contact inquiry", zap.Error(err))
		return
	}
	if !s.mail.Send(to, subject, html) {
		s.log.Error("failed to forward contact inquiry", zap.String("from", req.Email))
	}
}

// SendCampaignMessage delivers one marketing message for the weekly
// campaign fan-out.
func (s *notificationService) SendCampaignMessage(campaignType, email, name string) bool {
	subject, html, err := mailer.RenderCampaign(campaignType, name, s.config.Email.FrontendURL)
	if err != nil {
		s.log.Error("failed to render campaign email",
			zap.Error(err),
			zap.String("campaign_type", campaignType),
		)
		return false
	}

	return s.mail.Send(email, subject, html)
}
