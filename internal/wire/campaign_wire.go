package wire

import (
	"goldentouch-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCampaign(r *chi.Mux, handler *adaptor.CampaignHandler) {
	r.Route("/api/campaigns", func(r chi.Router) {
		r.Post("/trigger", handler.Trigger)
		r.Get("/status", handler.Status)
	})
}
