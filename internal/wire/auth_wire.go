package wire

import (
	"goldentouch-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r *chi.Mux, handler *adaptor.AuthHandler) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
		r.Post("/validate-session", handler.ValidateSession)
	})
}
