package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"goldentouch-booking/internal/catalog"
	"goldentouch-booking/internal/data/entity"
	"goldentouch-booking/internal/data/repository"
	"goldentouch-booking/internal/dto/request"
	"goldentouch-booking/pkg/security"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	minPageLimit     = 1
	maxPageLimit     = 100
	defaultPageLimit = 50
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	GetBookings(ctx context.Context, skip, limit int) ([]entity.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (*entity.Booking, error)
}

type bookingService struct {
	repo     repository.BookingRepository
	notifier NotificationService
	log      *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, notifier NotificationService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	// 1. Required-field validation
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Format validation
	if req.Email != nil && *req.Email != "" && !utils.ValidEmail(*req.Email) {
		return nil, fmt.Errorf("invalid email format")
	}
	if !utils.ValidPhone(req.Phone) {
		return nil, fmt.Errorf("invalid phone number format")
	}

	date, err := utils.ParseBookingDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format. Use YYYY-MM-DD")
	}
	if utils.DateInPast(date, time.Now()) {
		return nil, fmt.Errorf("cannot book dates in the past")
	}

	// 3. Promo resolution: unknown codes clear to null with zero discount
	var promoCode *string
	discount := 0
	if req.PromoCode != nil && *req.PromoCode != "" {
		if d, ok := catalog.ResolvePromo(*req.PromoCode); ok {
			normalized := strings.ToUpper(strings.TrimSpace(*req.PromoCode))
			promoCode = &normalized
			discount = d
		}
	}

	// 4. Build the record; free-text fields are sanitized before storage
	now := time.Now().UTC()
	booking := &entity.Booking{
		BookingID:   utils.GenerateUUIDString(),
		CustomerID:  utils.GenerateCustomerID(),
		Name:        security.Sanitize(req.Name),
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     security.Sanitize(req.Address),
		Service:     req.Service,
		ServiceName: catalog.ResolveService(req.Service),
		VehicleType: req.VehicleType,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       security.SanitizePtr(req.Notes),
		PromoCode:   promoCode,
		Discount:    discount,
		Status:      entity.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 5. Persist
	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("customer_id", booking.CustomerID),
		zap.String("service", booking.ServiceName),
	)

	// 6. Confirmation and business alert are best-effort; delivery failures
	// never reach the caller.
	go s.notifier.SendBookingEmails(booking)

	return booking, nil
}

func (s *bookingService) GetBookings(ctx context.Context, skip, limit int) ([]entity.Booking, error) {
	if limit == 0 {
		limit = defaultPageLimit
	}
	if skip < 0 || limit < minPageLimit || limit > maxPageLimit {
		return nil, fmt.Errorf("invalid pagination: skip must be >= 0 and limit between %d and %d", minPageLimit, maxPageLimit)
	}

	bookings, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch bookings")
	}

	return bookings, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to fetch booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to fetch booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	return booking, nil
}

// UpdateStatus accepts any valid status value from any prior state. The
// transition graph is intentionally not enforced; admins correct bookings
// out of order routinely.
func (s *bookingService) UpdateStatus(ctx context.Context, bookingID, status string) (*entity.Booking, error) {
	normalized, ok := entity.ValidStatus(strings.ToLower(strings.TrimSpace(status)))
	if !ok {
		return nil, fmt.Errorf("invalid status value: %s", status)
	}

	booking, err := s.repo.UpdateStatus(ctx, bookingID, normalized, time.Now().UTC())
	if err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("failed to update booking status")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(normalized)),
	)

	return booking, nil
}
