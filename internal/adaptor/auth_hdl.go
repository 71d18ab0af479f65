package adaptor

import (
	"encoding/json"
	"net/http"

	"goldentouch-booking/internal/dto/request"
	"goldentouch-booking/internal/dto/response"
	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/pkg/middleware"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	token, err := h.service.Login(middleware.ClientAddr(r), req.Password)
	if err != nil {
		handleServiceError(w, h.log, err, "admin login")
		return
	}

	utils.ResponseOK(w, response.AdminLoginResponse{
		Success: true,
		Token:   token,
		Message: "Login successful",
	})
}

// Logout handles POST /api/admin/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req request.SessionTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	h.service.Logout(req.Token)

	utils.ResponseOK(w, response.LogoutResponse{Success: true})
}

// ValidateSession handles POST /api/admin/validate-session
func (h *AuthHandler) ValidateSession(w http.ResponseWriter, r *http.Request) {
	var req request.SessionTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	utils.ResponseOK(w, response.SessionValidResponse{
		Valid: h.service.ValidateSession(req.Token),
	})
}
