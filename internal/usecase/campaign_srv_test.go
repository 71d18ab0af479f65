package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"goldentouch-booking/internal/data/entity"
	"goldentouch-booking/internal/dto/request"
	"goldentouch-booking/pkg/scheduler"
	"goldentouch-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type campaignSend struct {
	campaignType string
	email        string
	name         string
}

type campaignNotifier struct {
	mu    sync.Mutex
	sends []campaignSend
	done  chan struct{}
	want  int
}

func newCampaignNotifier(want int) *campaignNotifier {
	return &campaignNotifier{done: make(chan struct{}), want: want}
}

func (n *campaignNotifier) SendBookingEmails(_ *entity.Booking) {}

func (n *campaignNotifier) SendCampaignMessage(campaignType, email, name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sends = append(n.sends, campaignSend{campaignType, email, name})
	if len(n.sends) == n.want {
		close(n.done)
	}
	return true
}

func (n *campaignNotifier) SendCustomMessage(_ *request.SendMessageRequest) error { return nil }

func (n *campaignNotifier) SendContactInquiry(_ *request.ContactFormRequest) {}

func testCampaignService(repo *fakeBookingRepo, notifier NotificationService) CampaignService {
	config := &utils.Config{}
	config.Campaign.SendDelayMS = 1
	config.Campaign.MondaySpec = "0 9 * * 1"
	config.Campaign.FridaySpec = "0 9 * * 5"

	return NewCampaignService(repo, notifier, scheduler.New(zap.NewNop()), config, zap.NewNop())
}

func TestTriggerRejectsUnknownType(t *testing.T) {
	svc := testCampaignService(newFakeBookingRepo(), newCampaignNotifier(0))

	err := svc.Trigger("tuesday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid campaign type")

	assert.NoError(t, svc.Trigger(CampaignMonday))
	assert.NoError(t, svc.Trigger(CampaignFriday))
}

func TestCampaignFansOutToUniqueCustomers(t *testing.T) {
	repo := newFakeBookingRepo()
	bookingNotifier := newFakeNotifier()
	bookings := NewBookingService(repo, bookingNotifier, zap.NewNop())

	// Two customers, one of them with a repeat booking and one without an
	// email at all
	for _, c := range []struct {
		name  string
		email *string
	}{
		{"Jane Doe", ptr("jane@example.com")},
		{"Jane Doe", ptr("jane@example.com")},
		{"Bob Roe", ptr("bob@example.com")},
		{"No Email", nil},
	} {
		req := validBookingRequest()
		req.Name = c.name
		req.Email = c.email
		_, err := bookings.CreateBooking(context.Background(), req)
		require.NoError(t, err)
		<-bookingNotifier.bookingEmails
	}

	notifier := newCampaignNotifier(2)
	svc := testCampaignService(repo, notifier)

	require.NoError(t, svc.Trigger(CampaignMonday))

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("campaign fan-out did not complete")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.sends, 2)

	recipients := map[string]string{}
	for _, s := range notifier.sends {
		assert.Equal(t, CampaignMonday, s.campaignType)
		recipients[s.email] = s.name
	}
	assert.Equal(t, map[string]string{
		"jane@example.com": "Jane Doe",
		"bob@example.com":  "Bob Roe",
	}, recipients)
}

func TestSchedulerRegistersWeeklyJobs(t *testing.T) {
	svc := testCampaignService(newFakeBookingRepo(), newCampaignNotifier(0))
	defer svc.StopScheduler()

	require.NoError(t, svc.StartScheduler())

	jobs := svc.Jobs()
	require.Len(t, jobs, 2)

	names := []string{jobs[0].Name, jobs[1].Name}
	assert.Contains(t, names, "monday_campaign")
	assert.Contains(t, names, "friday_campaign")

	for _, job := range jobs {
		assert.False(t, job.NextRun.IsZero())
	}
}
