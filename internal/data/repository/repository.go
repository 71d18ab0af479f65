package repository

import (
	"goldentouch-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking     BookingRepository
	StatusCheck StatusCheckRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:     NewBookingRepository(db, log),
		StatusCheck: NewStatusCheckRepository(db, log),
	}
}
