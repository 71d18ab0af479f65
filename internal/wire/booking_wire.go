package wire

import (
	"goldentouch-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r *chi.Mux, handler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", handler.CreateBooking)
		r.Get("/", handler.GetBookings)
		r.Get("/{bookingId}", handler.GetBooking)
		r.Put("/{bookingId}/status", handler.UpdateStatus)
	})
}
