package repository

import (
	"context"
	"fmt"
	"time"

	"goldentouch-booking/internal/data/entity"
	"goldentouch-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, bookingID string) (*entity.Booking, error)
	List(ctx context.Context, skip, limit int) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus, updatedAt time.Time) (*entity.Booking, error)
	CustomerEmails(ctx context.Context) (map[string]string, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `booking_id, customer_id, name, email, phone, address,
	       service, service_name, vehicle_type, date, time, notes,
	       promo_code, discount, status, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, customer_id, name, email, phone, address,
		                      service, service_name, vehicle_type, date, time, notes,
		                      promo_code, discount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.BookingID,
		booking.CustomerID,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Address,
		booking.Service,
		booking.ServiceName,
		booking.VehicleType,
		booking.Date,
		booking.Time,
		booking.Notes,
		booking.PromoCode,
		booking.Discount,
		string(booking.Status),
		formatTimestamp(booking.CreatedAt),
		formatTimestamp(booking.UpdatedAt),
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) List(ctx context.Context, skip, limit int) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return bookings, nil
}

// UpdateStatus is a targeted field set, not a read-modify-write. Returns
// nil when the booking does not exist.
func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus, updatedAt time.Time) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = $3
		WHERE booking_id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID, string(status), formatTimestamp(updatedAt)))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return booking, nil
}

// CustomerEmails returns the unique customer emails ever seen on bookings,
// mapped to the first customer name recorded for each.
func (r *bookingRepository) CustomerEmails(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT email, name
		FROM bookings
		WHERE email IS NOT NULL AND email <> ''
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to fetch customer emails", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch customer emails: %w", err)
	}
	defer rows.Close()

	customers := make(map[string]string)
	for rows.Next() {
		var email, name string
		if err := rows.Scan(&email, &name); err != nil {
			return nil, fmt.Errorf("failed to scan customer email: %w", err)
		}
		if _, seen := customers[email]; !seen {
			customers[email] = name
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read customer emails: %w", err)
	}

	return customers, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking              entity.Booking
		status               string
		createdAt, updatedAt string
	)

	err := row.Scan(
		&booking.BookingID,
		&booking.CustomerID,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.Address,
		&booking.Service,
		&booking.ServiceName,
		&booking.VehicleType,
		&booking.Date,
		&booking.Time,
		&booking.Notes,
		&booking.PromoCode,
		&booking.Discount,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = entity.BookingStatus(status)
	if booking.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if booking.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}

	return &booking, nil
}

// Timestamps are persisted as ISO-8601 strings.

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
