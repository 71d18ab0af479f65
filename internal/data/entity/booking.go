package entity

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s (trimmed, lowercased) names a known
// booking status, returning the canonical value.
func ValidStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// Booking is a single service appointment. BookingID and CustomerID are
// assigned at creation and never change.
type Booking struct {
	BookingID   string        `json:"bookingId"`
	CustomerID  string        `json:"customerId"`
	Name        string        `json:"name"`
	Email       *string       `json:"email"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	Service     string        `json:"service"`
	ServiceName string        `json:"serviceName"`
	VehicleType *string       `json:"vehicleType"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Notes       *string       `json:"notes"`
	PromoCode   *string       `json:"promoCode"`
	Discount    int           `json:"discount"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
