package usecase

import (
	"context"
	"fmt"
	"time"

	"goldentouch-booking/internal/data/repository"
	"goldentouch-booking/pkg/scheduler"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	CampaignMonday = "monday"
	CampaignFriday = "friday"
)

type CampaignService interface {
	Trigger(campaignType string) error
	Jobs() []scheduler.JobStatus
	StartScheduler() error
	StopScheduler()
}

type campaignService struct {
	repo     repository.BookingRepository
	notifier NotificationService
	sched    *scheduler.Scheduler
	config   *utils.Config
	limiter  *rate.Limiter
	log      *zap.Logger
}

func NewCampaignService(
	repo repository.BookingRepository,
	notifier NotificationService,
	sched *scheduler.Scheduler,
	config *utils.Config,
	log *zap.Logger,
) CampaignService {
	// Sends are paced so a large customer list cannot flood the SMTP
	// transport.
	delay := time.Duration(config.Campaign.SendDelayMS) * time.Millisecond
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}

	return &campaignService{
		repo:     repo,
		notifier: notifier,
		sched:    sched,
		config:   config,
		limiter:  rate.NewLimiter(rate.Every(delay), 1),
		log:      log.With(zap.String("service", "campaign")),
	}
}

// Trigger validates the campaign type and kicks the fan-out off in the
// background; the caller's request returns immediately.
func (s *campaignService) Trigger(campaignType string) error {
	if campaignType != CampaignMonday && campaignType != CampaignFriday {
		return fmt.Errorf("invalid campaign type: %s", campaignType)
	}

	go s.run(context.Background(), campaignType)
	return nil
}

// StartScheduler registers the two weekly triggers and starts the cron
// loop.
func (s *campaignService) StartScheduler() error {
	if err := s.sched.AddJob("monday_campaign", s.config.Campaign.MondaySpec, func() {
		s.run(context.Background(), CampaignMonday)
	}); err != nil {
		return err
	}

	if err := s.sched.AddJob("friday_campaign", s.config.Campaign.FridaySpec, func() {
		s.run(context.Background(), CampaignFriday)
	}); err != nil {
		return err
	}

	s.sched.Start()
	return nil
}

func (s *campaignService) StopScheduler() {
	s.sched.Stop()
}

func (s *campaignService) Jobs() []scheduler.JobStatus {
	return s.sched.Jobs()
}

// run sends the campaign to every unique customer email sequentially.
// Per-recipient failures are counted and logged but never abort the batch.
func (s *campaignService) run(ctx context.Context, campaignType string) {
	s.log.Info("starting email campaign", zap.String("campaign_type", campaignType))

	customers, err := s.repo.CustomerEmails(ctx)
	if err != nil {
		s.log.Error("failed to collect customer emails", zap.Error(err))
		return
	}
	if len(customers) == 0 {
		s.log.Warn("no customers found for email campaign")
		return
	}

	sent, failed := 0, 0
	for email, name := range customers {
		if err := s.limiter.Wait(ctx); err != nil {
			s.log.Error("campaign pacing interrupted", zap.Error(err))
			return
		}

		if s.notifier.SendCampaignMessage(campaignType, email, name) {
			sent++
		} else {
			failed++
			s.log.Error("failed to send campaign email", zap.String("to", email))
		}
	}

	s.log.Info("email campaign complete",
		zap.String("campaign_type", campaignType),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
}
