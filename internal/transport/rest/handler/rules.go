package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"adaptiveui/internal/model"
	"adaptiveui/internal/service"
)

// RuleHandler handles adaptation-rule endpoints
type RuleHandler struct {
	ruleSvc       *service.RuleService
	experimentSvc *service.ExperimentService
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(ruleSvc *service.RuleService, experimentSvc *service.ExperimentService) *RuleHandler {
	return &RuleHandler{
		ruleSvc:       ruleSvc,
		experimentSvc: experimentSvc,
	}
}

// CreateRuleRequest is the request body for creating or updating a rule
type CreateRuleRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Conditions  model.RuleConditions `json:"conditions"`
	Actions     model.RuleActions    `json:"actions"`
	Priority    int                  `json:"priority"`
	Enabled     *bool                `json:"enabled,omitempty"`
}

func (req *CreateRuleRequest) toRule() *model.AdaptationRule {
	rule := &model.AdaptationRule{
		Name:        req.Name,
		Description: req.Description,
		Conditions:  req.Conditions,
		Actions:     req.Actions,
		Priority:    req.Priority,
		Enabled:     true,
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	return rule
}

// Create handles POST /v1/rules
func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.ruleSvc.Create(r.Context(), req.toRule())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"rule_id": id, "status": "created"})
}

// List handles GET /v1/rules
func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rules == nil {
		rules = []model.AdaptationRule{}
	}
	writeJSON(w, http.StatusOK, rules)
}

// Get handles GET /v1/rules/{ruleId}
func (h *RuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	rule, err := h.ruleSvc.Get(r.Context(), mux.Vars(r)["ruleId"])
	if err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

// Update handles PUT /v1/rules/{ruleId}
func (h *RuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rule := req.toRule()
	rule.ID = mux.Vars(r)["ruleId"]

	if err := h.ruleSvc.Update(r.Context(), rule); err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /v1/rules/{ruleId}
func (h *RuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ruleSvc.Delete(r.Context(), mux.Vars(r)["ruleId"]); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// CompareRequest is the request body for a variant comparison
type CompareRequest struct {
	RuleAID string `json:"rule_a_id"`
	RuleBID string `json:"rule_b_id"`
}

// Compare handles POST /v1/experiments/compare
func (h *RuleHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.experimentSvc.CompareVariants(r.Context(), req.RuleAID, req.RuleBID)
	if err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
