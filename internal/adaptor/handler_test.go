package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/pkg/scheduler"
	"goldentouch-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	password string
	blocked  bool
	valid    map[string]bool
}

func (s *fakeAuthService) Login(addr, password string) (string, error) {
	if s.blocked {
		return "", fmt.Errorf("too many failed attempts, try again later")
	}
	if password != s.password {
		return "", fmt.Errorf("invalid password")
	}
	return "tok-123", nil
}

func (s *fakeAuthService) Logout(token string) {
	delete(s.valid, token)
}

func (s *fakeAuthService) ValidateSession(token string) bool {
	return s.valid[token]
}

type fakeCampaignService struct {
	triggered []string
}

func (s *fakeCampaignService) Trigger(campaignType string) error {
	if campaignType != usecase.CampaignMonday && campaignType != usecase.CampaignFriday {
		return fmt.Errorf("invalid campaign type: %s", campaignType)
	}
	s.triggered = append(s.triggered, campaignType)
	return nil
}

func (s *fakeCampaignService) Jobs() []scheduler.JobStatus {
	return []scheduler.JobStatus{
		{ID: 1, Name: "monday_campaign", NextRun: time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "friday_campaign", NextRun: time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)},
	}
}

func (s *fakeCampaignService) StartScheduler() error { return nil }
func (s *fakeCampaignService) StopScheduler()        {}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRootLiveness(t *testing.T) {
	h := NewStatusHandler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Hello World"}, decodeBody(t, rec))
}

func TestValidatePromoHandler(t *testing.T) {
	h := NewPromoHandler(usecase.NewPromoService(zap.NewNop()), zap.NewNop())

	rec := postJSON(t, h.ValidatePromo, `{"promoCode": "goldy"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, float64(30), body["discount"])
	assert.Equal(t, "Promo code applied! 30% discount", body["message"])

	rec = postJSON(t, h.ValidatePromo, `{"promoCode": "BOGUS"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, float64(0), body["discount"])
	assert.Equal(t, "Invalid promo code", body["message"])

	// Missing code is a validation error, not an invalid promo
	rec = postJSON(t, h.ValidatePromo, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.ValidatePromo, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	auth := &fakeAuthService{password: "hunter2", valid: map[string]bool{"tok-123": true}}
	h := NewAuthHandler(auth, zap.NewNop())

	rec := postJSON(t, h.Login, `{"password": "hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "tok-123", body["token"])
	assert.Equal(t, "Login successful", body["message"])

	rec = postJSON(t, h.Login, `{"password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid password", decodeBody(t, rec)["detail"])

	rec = postJSON(t, h.Login, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	auth.blocked = true
	rec = postJSON(t, h.Login, `{"password": "hunter2"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many failed attempts, try again later", decodeBody(t, rec)["detail"])
}

func TestValidateSessionHandler(t *testing.T) {
	auth := &fakeAuthService{valid: map[string]bool{"tok-123": true}}
	h := NewAuthHandler(auth, zap.NewNop())

	rec := postJSON(t, h.ValidateSession, `{"token": "tok-123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"valid": true}, decodeBody(t, rec))

	rec = postJSON(t, h.ValidateSession, `{"token": "nope"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"valid": false}, decodeBody(t, rec))
}

func TestLogoutHandler(t *testing.T) {
	auth := &fakeAuthService{valid: map[string]bool{"tok-123": true}}
	h := NewAuthHandler(auth, zap.NewNop())

	rec := postJSON(t, h.Logout, `{"token": "tok-123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true}, decodeBody(t, rec))
	assert.False(t, auth.ValidateSession("tok-123"))

	// Unknown token still succeeds
	rec = postJSON(t, h.Logout, `{"token": "never-existed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCampaignTriggerHandler(t *testing.T) {
	campaigns := &fakeCampaignService{}
	h := NewCampaignHandler(campaigns, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/trigger?campaign_type=monday", nil)
	rec := httptest.NewRecorder()
	h.Trigger(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "monday campaign triggered", body["message"])
	assert.Equal(t, []string{"monday"}, campaigns.triggered)

	req = httptest.NewRequest(http.MethodPost, "/api/campaigns/trigger?campaign_type=tuesday", nil)
	rec = httptest.NewRecorder()
	h.Trigger(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["detail"], "invalid campaign type")
}

func TestCampaignStatusHandler(t *testing.T) {
	h := NewCampaignHandler(&fakeCampaignService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/status", nil)
	rec := httptest.NewRecorder()
	h.Status(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var jobs []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "monday_campaign", jobs[0]["name"])
}

func TestHandleServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err      string
		wantCode int
	}{
		{"booking not found", http.StatusNotFound},
		{"too many failed attempts, try again later", http.StatusTooManyRequests},
		{"invalid password", http.StatusUnauthorized},
		{"validation failed: name is required", http.StatusBadRequest},
		{"invalid date format. Use YYYY-MM-DD", http.StatusBadRequest},
		{"cannot book dates in the past", http.StatusBadRequest},
		{"database exploded", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), fmt.Errorf("%s", tt.err), "test op")
			assert.Equal(t, tt.wantCode, rec.Code)

			detail := decodeBody(t, rec)["detail"]
			if tt.wantCode == http.StatusInternalServerError {
				// Internals never leak to the client
				assert.Equal(t, "Internal server error", detail)
			} else {
				assert.Equal(t, tt.err, detail)
			}
		})
	}
}

func TestErrorBodyShape(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.ResponseNotFound(rec, "booking not found")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"detail": "booking not found"}, body)
}

func TestGetBookingsRejectsBadPagination(t *testing.T) {
	// All three must 400 before the service is touched
	h := NewBookingHandler(nil, zap.NewNop())

	for _, query := range []string{"limit=0", "limit=abc", "skip=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings?"+query, nil)
		rec := httptest.NewRecorder()
		h.GetBookings(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Contains(t, decodeBody(t, rec)["detail"], "Invalid", query)
	}
}

func TestBookingMissingIDParam(t *testing.T) {
	// Without a route context the param is empty; the handler must reject
	// before touching the service
	h := NewBookingHandler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/", nil)
	rec := httptest.NewRecorder()
	h.GetBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Booking ID is required", decodeBody(t, rec)["detail"])
}
