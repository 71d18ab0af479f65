package wire

import (
	"net/http"

	"goldentouch-booking/internal/adaptor"
	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/pkg/middleware"
	"goldentouch-booking/pkg/security"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes handlers and the router
func Wiring(service *usecase.Service, guard *security.Guard, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, guard, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, guard *security.Guard, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware: every request passes the guard before any handler
	r.Use(middleware.Metrics())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimit(guard, logger))

	wireStatus(r, handler.Status)
	wireAuth(r, handler.Auth)
	wirePromo(r, handler.Promo)
	wireBooking(r, handler.Booking)
	wireMessage(r, handler.Message)
	wireCampaign(r, handler.Campaign)

	// Ops endpoints
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
