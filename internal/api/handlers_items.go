package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campuslaf/laf-backend/internal/api/respond"
	"github.com/campuslaf/laf-backend/internal/expiry"
	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/query"
	"github.com/campuslaf/laf-backend/internal/services"
)

// ItemHandler is the thin HTTP transport over ItemService.
type ItemHandler struct {
	svc *services.ItemService
}

func NewItemHandler(svc *services.ItemService) *ItemHandler { return &ItemHandler{svc: svc} }

// CreateItem POST /api/laf/item
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	item, err := h.svc.CreateItem(r.Context(), req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, item)
}

// SearchItems GET /api/laf/items
func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	filters, archived, err := filtersFromQuery(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	items, err := h.svc.ListItems(r.Context(), filters, archived)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items, "count": len(items)})
}

// UpdateItem PUT /api/laf/item/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	var req model.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	item, err := h.svc.UpdateItem(r.Context(), id, req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

// FoundItem PUT /api/laf/item/found/{id}
func (h *ItemHandler) FoundItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	var req model.FoundItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	item, err := h.svc.MarkItemFound(r.Context(), id, req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

// ArchiveItems POST /api/laf/items/archive
func (h *ItemHandler) ArchiveItems(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := h.svc.ArchiveItems(r.Context(), req.IDs); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExpiredItems GET /api/laf/expired
func (h *ItemHandler) ExpiredItems(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("type")
	if target == "" {
		target = expiry.TargetAll
	}
	out, err := h.svc.ExpiredItems(r.Context(), target)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// filtersFromQuery parses the shared search parameters. The location
// parameter repeats; archived defaults to false.
func filtersFromQuery(r *http.Request) (query.Filters, bool, error) {
	q := r.URL.Query()
	f := query.Filters{
		Date:          q.Get("date"),
		DateDirection: query.DateDirection(q.Get("dateDirection")),
		Locations:     q["location"],
		Description:   q.Get("description"),
		Type:          q.Get("type"),
		Name:          q.Get("name"),
		Email:         q.Get("email"),
	}
	if raw := q.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return query.Filters{}, false, err
		}
		f.ID = &id
	}
	archived := false
	if raw := q.Get("archived"); raw != "" {
		var err error
		if archived, err = strconv.ParseBool(raw); err != nil {
			return query.Filters{}, false, err
		}
	}
	return f, archived, nil
}
