package handler

import (
	"encoding/json"
	"net/http"

	"adaptiveui/internal/service"
)

// AnalyticsHandler handles analytics and interaction-tracking endpoints
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
	trackingSvc  *service.TrackingService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService, trackingSvc *service.TrackingService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		trackingSvc:  trackingSvc,
	}
}

// Report handles GET /v1/analytics
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsSvc.Report(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// TrackRequest is the request body for recording an interaction
type TrackRequest struct {
	UserID      int64             `json:"user_id"`
	Action      string            `json:"action"`
	ComponentID string            `json:"component_id,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Track handles POST /v1/interactions
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	interaction, err := h.trackingSvc.Track(r.Context(), req.UserID, req.Action, req.ComponentID, req.Metadata)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, interaction)
}
