package wire

import (
	"goldentouch-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStatus(r *chi.Mux, handler *adaptor.StatusHandler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", handler.Root)
		r.Post("/status", handler.CreateStatusCheck)
		r.Get("/status", handler.GetStatusChecks)
	})
}
