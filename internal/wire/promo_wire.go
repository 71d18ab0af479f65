package wire

import (
	"goldentouch-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePromo(r *chi.Mux, handler *adaptor.PromoHandler) {
	r.Post("/api/validate-promo", handler.ValidatePromo)
}
