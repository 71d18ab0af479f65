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

type MessageHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.NotificationService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// SendMessage handles POST /api/send-message
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	if err := h.service.SendCustomMessage(&req); err != nil {
		h.log.Error("Failed to send custom message", zap.Error(err), zap.String("to", req.ToEmail))
		utils.ResponseInternalError(w, "Failed to send email")
		return
	}

	utils.ResponseOK(w, response.MessageResponse{
		Success: true,
		Message: "Email sent successfully",
	})
}

// Contact handles POST /api/contact. The inquiry is forwarded to the
// business inbox in the background so the frontend gets its confirmation
// immediately.
func (h *MessageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	go h.service.SendContactInquiry(&req)

	utils.ResponseJSON(w, http.StatusAccepted, response.ContactResponse{
		Status:  "accepted",
		Message: "Thank you for your message. We will get back to you soon.",
	})
}
