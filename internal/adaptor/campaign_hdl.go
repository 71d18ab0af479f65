package adaptor

import (
	"fmt"
	"net/http"

	"goldentouch-booking/internal/dto/response"
	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

type CampaignHandler struct {
	service usecase.CampaignService
	log     *zap.Logger
}

func NewCampaignHandler(service usecase.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{
		service: service,
		log:     log.With(zap.String("handler", "campaign")),
	}
}

// Trigger handles POST /api/campaigns/trigger?campaign_type=monday|friday
func (h *CampaignHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	campaignType := r.URL.Query().Get("campaign_type")

	if err := h.service.Trigger(campaignType); err != nil {
		handleServiceError(w, h.log, err, "trigger campaign")
		return
	}

	utils.ResponseOK(w, response.CampaignResponse{
		Success: true,
		Message: fmt.Sprintf("%s campaign triggered", campaignType),
	})
}

// Status handles GET /api/campaigns/status
func (h *CampaignHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.ResponseOK(w, h.service.Jobs())
}
