package handler

import (
	"encoding/json"
	"net/http"

	"adaptiveui/internal/model"
	"adaptiveui/internal/service"
)

// ComponentHandler handles component-library endpoints
type ComponentHandler struct {
	componentSvc *service.ComponentService
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentSvc *service.ComponentService) *ComponentHandler {
	return &ComponentHandler{componentSvc: componentSvc}
}

// Create handles POST /v1/components
func (h *ComponentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var component model.Component
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.componentSvc.Create(r.Context(), &component)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"component_id": id})
}

// List handles GET /v1/components
func (h *ComponentHandler) List(w http.ResponseWriter, r *http.Request) {
	components, err := h.componentSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if components == nil {
		components = []model.Component{}
	}
	writeJSON(w, http.StatusOK, components)
}
