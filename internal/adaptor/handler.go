package adaptor

import (
	"net/http"
	"strings"

	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Booking  *BookingHandler
	Promo    *PromoHandler
	Status   *StatusHandler
	Message  *MessageHandler
	Campaign *CampaignHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Promo:    NewPromoHandler(service.Promo, log),
		Status:   NewStatusHandler(service.Status, log),
		Message:  NewMessageHandler(service.Notification, log),
		Campaign: NewCampaignHandler(service.Campaign, log),
	}
}

// handleServiceError maps service errors to HTTP responses by message
// shape. Unexpected errors become a generic 500; internals stay in the
// logs.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "too many"):
		log.Warn(operation+" blocked", zap.Error(err))
		utils.ResponseTooManyRequests(w, errMsg)

	case strings.Contains(errMsg, "invalid password"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "missing"),
		strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
