package usecase

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"goldentouch-booking/internal/data/entity"
	"goldentouch-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings  map[string]*entity.Booking
	order     []string
	createErr error

	lastListSkip  int
	lastListLimit int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *booking
	r.bookings[booking.BookingID] = &copied
	r.order = append(r.order, booking.BookingID)
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, bookingID string) (*entity.Booking, error) {
	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) List(_ context.Context, skip, limit int) ([]entity.Booking, error) {
	r.lastListSkip = skip
	r.lastListLimit = limit

	var out []entity.Booking
	for i := skip; i < len(r.order) && len(out) < limit; i++ {
		out = append(out, *r.bookings[r.order[i]])
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID string, status entity.BookingStatus, updatedAt time.Time) (*entity.Booking, error) {
	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	booking.Status = status
	booking.UpdatedAt = updatedAt
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) CustomerEmails(_ context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for _, id := range r.order {
		b := r.bookings[id]
		if b.Email == nil || *b.Email == "" {
			continue
		}
		if _, seen := out[*b.Email]; !seen {
			out[*b.Email] = b.Name
		}
	}
	return out, nil
}

type fakeNotifier struct {
	bookingEmails chan *entity.Booking
	sendOK        bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{bookingEmails: make(chan *entity.Booking, 8), sendOK: true}
}

func (n *fakeNotifier) SendBookingEmails(booking *entity.Booking) {
	n.bookingEmails <- booking
}

func (n *fakeNotifier) SendCustomMessage(_ *request.SendMessageRequest) error {
	if !n.sendOK {
		return fmt.Errorf("failed to send email")
	}
	return nil
}

func (n *fakeNotifier) SendContactInquiry(_ *request.ContactFormRequest) {}

func (n *fakeNotifier) SendCampaignMessage(_, _, _ string) bool { return n.sendOK }

func ptr(s string) *string { return &s }

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Name:    "Jane Doe",
		Email:   ptr("jane@example.com"),
		Phone:   "+14155552671",
		Address: "12 Rose Street",
		Service: "5",
		Date:    futureDate(),
		Time:    "10:00",
	}
}

var customerIDPattern = regexp.MustCompile(`^GT-[A-Z]{3}[0-9]{3}$`)

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	notifier := newFakeNotifier()
	svc := NewBookingService(repo, notifier, zap.NewNop())

	booking, err := svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.BookingID)
	assert.Regexp(t, customerIDPattern, booking.CustomerID)
	assert.Equal(t, entity.StatusPending, booking.Status)
	assert.Equal(t, "Home Cleaning", booking.ServiceName)
	assert.Nil(t, booking.PromoCode)
	assert.Equal(t, 0, booking.Discount)
	assert.False(t, booking.CreatedAt.IsZero())

	stored, err := repo.FindByID(context.Background(), booking.BookingID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, booking.CustomerID, stored.CustomerID)

	select {
	case notified := <-notifier.bookingEmails:
		assert.Equal(t, booking.BookingID, notified.BookingID)
	case <-time.After(time.Second):
		t.Fatal("booking emails were never dispatched")
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo, newFakeNotifier(), zap.NewNop())

	req := validBookingRequest()
	req.Phone = ""
	req.Address = ""

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repo.bookings, "nothing may be persisted on validation failure")
}

func TestCreateBookingInvalidFormats(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeNotifier(), zap.NewNop())

	req := validBookingRequest()
	req.Email = ptr("not-an-email")
	_, err := svc.CreateBooking(context.Background(), req)
	require.EqualError(t, err, "invalid email format")

	req = validBookingRequest()
	req.Phone = "12345"
	_, err = svc.CreateBooking(context.Background(), req)
	require.EqualError(t, err, "invalid phone number format")

	req = validBookingRequest()
	req.Date = "15/06/2025"
	_, err = svc.CreateBooking(context.Background(), req)
	require.EqualError(t, err, "invalid date format. Use YYYY-MM-DD")

	req = validBookingRequest()
	req.Date = "2020-01-01"
	_, err = svc.CreateBooking(context.Background(), req)
	require.EqualError(t, err, "cannot book dates in the past")
}

func TestCreateBookingPromoHandling(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeNotifier(), zap.NewNop())

	// Known code is normalized to uppercase and applies its discount
	req := validBookingRequest()
	req.PromoCode = ptr("goldy")
	booking, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, booking.PromoCode)
	assert.Equal(t, "GOLDY", *booking.PromoCode)
	assert.Equal(t, 30, booking.Discount)

	// Unknown code is cleared rather than rejected
	req = validBookingRequest()
	req.PromoCode = ptr("BOGUS")
	booking, err = svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, booking.PromoCode)
	assert.Equal(t, 0, booking.Discount)
}

func TestCreateBookingSanitizesFreeText(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeNotifier(), zap.NewNop())

	req := validBookingRequest()
	req.Name = `<b>Jane</b> "Doe"`
	req.Address = "javascript:alert(1) Main Road"
	req.Notes = ptr("ring onclick=bell() twice")

	booking, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "bJane/b Doe", booking.Name)
	assert.Equal(t, "alert(1) Main Road", booking.Address)
	require.NotNil(t, booking.Notes)
	assert.Equal(t, "ring bell() twice", *booking.Notes)
}

func TestGetBookingsPagination(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo, newFakeNotifier(), zap.NewNop())

	// Zero limit falls back to the default page size
	_, err := svc.GetBookings(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultPageLimit, repo.lastListLimit)

	_, err = svc.GetBookings(context.Background(), -1, 10)
	assert.Error(t, err)

	_, err = svc.GetBookings(context.Background(), 0, maxPageLimit+1)
	assert.Error(t, err)

	_, err = svc.GetBookings(context.Background(), 0, maxPageLimit)
	assert.NoError(t, err)
}

func TestGetBookingNotFound(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), newFakeNotifier(), zap.NewNop())

	_, err := svc.GetBooking(context.Background(), "missing-id")
	require.EqualError(t, err, "booking not found")
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	notifier := newFakeNotifier()
	svc := NewBookingService(repo, notifier, zap.NewNop())

	booking, err := svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	<-notifier.bookingEmails

	// Status input is normalized before matching
	updated, err := svc.UpdateStatus(context.Background(), booking.BookingID, "  Confirmed ")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, updated.Status)

	// Repeating a transition is allowed
	updated, err = svc.UpdateStatus(context.Background(), booking.BookingID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, updated.Status)

	// Any valid status is reachable from any other
	updated, err = svc.UpdateStatus(context.Background(), booking.BookingID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), booking.BookingID, "archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status value")

	_, err = svc.UpdateStatus(context.Background(), "missing-id", "confirmed")
	require.EqualError(t, err, "booking not found")
}
