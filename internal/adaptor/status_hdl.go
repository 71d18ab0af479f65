package adaptor

import (
	"encoding/json"
	"net/http"

	"goldentouch-booking/internal/dto/request"
	"goldentouch-booking/internal/dto/response"
	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

type StatusHandler struct {
	service usecase.StatusService
	log     *zap.Logger
}

func NewStatusHandler(service usecase.StatusService, log *zap.Logger) *StatusHandler {
	return &StatusHandler{
		service: service,
		log:     log.With(zap.String("handler", "status")),
	}
}

// Root handles GET /api/ (liveness)
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.ResponseOK(w, response.RootResponse{Message: "Hello World"})
}

// CreateStatusCheck handles POST /api/status
func (h *StatusHandler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req request.StatusCheckCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	check, err := h.service.CreateStatusCheck(r.Context(), req.ClientName)
	if err != nil {
		handleServiceError(w, h.log, err, "create status check")
		return
	}

	utils.ResponseOK(w, check)
}

// GetStatusChecks handles GET /api/status
func (h *StatusHandler) GetStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.service.GetStatusChecks(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list status checks")
		return
	}

	utils.ResponseOK(w, checks)
}
