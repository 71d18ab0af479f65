package wire

import (
	"goldentouch-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMessage(r *chi.Mux, handler *adaptor.MessageHandler) {
	r.Post("/api/send-message", handler.SendMessage)
	r.Post("/api/contact", handler.Contact)
}
