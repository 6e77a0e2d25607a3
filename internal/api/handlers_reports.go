package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campuslaf/laf-backend/internal/api/respond"
	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/services"
)

// ReportHandler is the thin HTTP transport over ReportService.
type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler { return &ReportHandler{svc: svc} }

// CreateReport POST /api/laf/report
// Public endpoint; a report filed by an authenticated caller is born viewed.
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	report, err := h.svc.CreateReport(r.Context(), req, AuthResult(r).Authenticated)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, report)
}

// SearchReports GET /api/laf/reports
func (h *ReportHandler) SearchReports(w http.ResponseWriter, r *http.Request) {
	filters, archived, err := filtersFromQuery(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	reports, err := h.svc.ListReports(r.Context(), filters, archived)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"reports": reports, "count": len(reports)})
}

// UpdateReport PUT /api/laf/report/{id}
func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	report, err := h.svc.UpdateReport(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, report)
}

// FoundReport PUT /api/laf/report/found/{id}
func (h *ReportHandler) FoundReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.MarkReportFound(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, report)
}

// ViewedReport PUT /api/laf/report/viewed/{id}
func (h *ReportHandler) ViewedReport(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkViewed(r.Context(), mux.Vars(r)["id"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NewReports GET /api/laf/reports/new
func (h *ReportHandler) NewReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.NewReports(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"reports": reports, "count": len(reports)})
}

// NewReportCount GET /api/laf/reports/new/count
func (h *ReportHandler) NewReportCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.NewReportCount(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]int64{"count": n})
}
