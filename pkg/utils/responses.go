package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body attached to every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes any payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseOK(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Detail: detail})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusUnauthorized, ErrorResponse{Detail: detail})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{Detail: detail})
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusTooManyRequests, ErrorResponse{Detail: detail})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: detail})
}
