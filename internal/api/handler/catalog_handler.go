package handler

import (
	"encoding/json"
	"net/http"

	"vin-dashboard/internal/catalog"
	"vin-dashboard/internal/middleware"
	"vin-dashboard/internal/querylog"
	"vin-dashboard/internal/store"
)

// Handler carries the services the dashboard endpoints are built on.
type Handler struct {
	Catalog  *catalog.Service
	Queries  *querylog.Service
	Sessions *middleware.Sessions
	Secret   string
}

// CatalogSearch looks up merged statistics rows by exact VIN
// @Summary Search the catalog by VIN
// @Description Case-insensitive exact VIN lookup over the merged statistics dataset, grouped by year
// @Tags catalog
// @Produce json
// @Param vin query string true "VIN to look up (exact match)"
// @Success 200 {object} map[string]interface{} "Matching rows grouped by year"
// @Failure 400 {object} map[string]interface{} "Missing VIN"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /catalog/search [get]
func (h *Handler) CatalogSearch(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		http.Error(w, "VIN is required", http.StatusBadRequest)
		return
	}

	groups, total, err := h.Catalog.Search(vin)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	store.SaveAudit("catalog_search", vin)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"vin":    vin,
		"total":  total,
		"groups": groups,
	})
}

// CatalogReload drops the cached catalog dataset
// @Summary Reload the catalog
// @Description Invalidate the merged dataset cache; the next search reloads from the data directory
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Cache invalidated"
// @Router /catalog/reload [post]
func (h *Handler) CatalogReload(w http.ResponseWriter, r *http.Request) {
	h.Catalog.Invalidate()
	store.SaveAudit("catalog_reload", "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "catalog cache invalidated",
	})
}
