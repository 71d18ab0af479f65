package adaptor

import (
	"encoding/json"
	"net/http"

	"goldentouch-booking/internal/dto/request"
	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

type PromoHandler struct {
	service usecase.PromoService
	log     *zap.Logger
}

func NewPromoHandler(service usecase.PromoService, log *zap.Logger) *PromoHandler {
	return &PromoHandler{
		service: service,
		log:     log.With(zap.String("handler", "promo")),
	}
}

// ValidatePromo handles POST /api/validate-promo
func (h *PromoHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req request.ValidatePromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	utils.ResponseOK(w, h.service.ValidatePromo(req.PromoCode))
}
