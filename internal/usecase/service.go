package usecase

import (
	"goldentouch-booking/internal/data/repository"
	"goldentouch-booking/pkg/scheduler"
	"goldentouch-booking/pkg/security"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

// MailTransport is the outbound email collaborator. Send makes a single
// delivery attempt and reports the outcome; a transport without credentials
// reports disabled and skips every send.
type MailTransport interface {
	Enabled() bool
	Send(to, subject, htmlBody string) bool
}

type Service struct {
	Auth         AuthService
	Booking      BookingService
	Promo        PromoService
	Status       StatusService
	Notification NotificationService
	Campaign     CampaignService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	guard *security.Guard,
	sessions *security.SessionStore,
	mail MailTransport,
	sched *scheduler.Scheduler,
	log *zap.Logger,
) *Service {
	notification := NewNotificationService(mail, config, log)

	return &Service{
		Auth:         NewAuthService(guard, sessions, config, log),
		Booking:      NewBookingService(repo.Booking, notification, log),
		Promo:        NewPromoService(log),
		Status:       NewStatusService(repo.StatusCheck, log),
		Notification: notification,
		Campaign:     NewCampaignService(repo.Booking, notification, sched, config, log),
	}
}
