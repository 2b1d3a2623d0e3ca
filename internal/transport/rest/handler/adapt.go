package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"adaptiveui/internal/engine"
	"adaptiveui/internal/model"
	"adaptiveui/internal/service"
)

// AdaptHandler handles adaptation endpoints
type AdaptHandler struct {
	adaptSvc *service.AdaptationService
}

// NewAdaptHandler creates a new adaptation handler
func NewAdaptHandler(adaptSvc *service.AdaptationService) *AdaptHandler {
	return &AdaptHandler{adaptSvc: adaptSvc}
}

// AdaptRequest is the request body for an adaptation. Context is optional;
// without it the server-side telemetry source supplies one.
type AdaptRequest struct {
	UserID  int64          `json:"user_id"`
	Context *model.Context `json:"context,omitempty"`
}

// Adapt handles POST /v1/adapt
func (h *AdaptHandler) Adapt(w http.ResponseWriter, r *http.Request) {
	var req AdaptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	result, err := h.adaptSvc.Adapt(r.Context(), req.UserID, req.Context)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidContext) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// EvaluateRules handles GET /v1/users/{userId}/rules
func (h *AdaptHandler) EvaluateRules(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	results, err := h.adaptSvc.EvaluateRules(r.Context(), userID)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidContext) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if results == nil {
		results = []model.MatchResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

// GetContext handles GET /v1/users/{userId}/context
func (h *AdaptHandler) GetContext(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx, err := h.adaptSvc.CollectContext(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ctx)
}
