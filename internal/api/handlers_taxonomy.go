package api

import (
	"encoding/json"
	"net/http"

	"github.com/campuslaf/laf-backend/internal/api/respond"
	"github.com/campuslaf/laf-backend/internal/services"
)

// TaxonomyHandler serves the type and location admin surface.
type TaxonomyHandler struct {
	svc *services.TaxonomyService
}

func NewTaxonomyHandler(svc *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{svc: svc}
}

// Types GET /api/laf/types
// Public: only visible types, the set offered on submission forms.
func (h *TaxonomyHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.VisibleTypes(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"types": types})
}

// Locations GET /api/laf/locations
func (h *TaxonomyHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.svc.Locations(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

// CreateType POST /api/laf/type
func (h *TaxonomyHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type    string `json:"type"`
		Letter  string `json:"letter"`
		Visible bool   `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := h.svc.AddType(r.Context(), req.Type, req.Letter, req.Visible); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// DeleteType DELETE /api/laf/type
func (h *TaxonomyHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := h.svc.DeleteType(r.Context(), req.Type); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateLocation POST /api/laf/location
func (h *TaxonomyHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := h.svc.AddLocation(r.Context(), req.Location); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// DeleteLocation DELETE /api/laf/location
func (h *TaxonomyHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := h.svc.DeleteLocation(r.Context(), req.Location); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
