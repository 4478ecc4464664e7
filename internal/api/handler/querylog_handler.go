package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vin-dashboard/internal/querylog"
	"vin-dashboard/internal/store"
)

// parseRange validates the from/to query parameters. Both are required,
// must be YYYY-MM-DD, and from must not be after to - an inverted range is
// caller-side input to reject before any computation.
func parseRange(r *http.Request) (from, to time.Time, err error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("'from' and 'to' dates are required (YYYY-MM-DD)")
	}

	from, err = time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'from' date: %s", fromStr)
	}
	to, err = time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'to' date: %s", toStr)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("'from' date must not be after 'to' date")
	}
	return from, to, nil
}

// QuerySummary aggregates the query log for the chart view
// @Summary Aggregate query-log records
// @Description Filter by organization and inclusive date range, deduplicate, and return per-day counts plus the top 5 VINs
// @Tags queries
// @Produce json
// @Param organization query string false "Exact organization name; empty = all"
// @Param from query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param to query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} model.AggregationResult "Aggregation result"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /queries/summary [get]
func (h *Handler) QuerySummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	org := r.URL.Query().Get("organization")

	result, err := h.Queries.Summarize(org, from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	store.SaveAudit("query_summary", fmt.Sprintf("org=%s from=%s to=%s", org, from.Format("2006-01-02"), to.Format("2006-01-02")))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// QueryExport ships the deduplicated rows as an XLSX attachment
// @Summary Export query-log records
// @Description Build the deduplicated export workbook in memory and return it as an XLSX attachment
// @Tags queries
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param organization query string false "Exact organization name; empty = all"
// @Param from query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param to query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary "XLSX workbook"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Dataset load or export failure"
// @Router /queries/export [get]
func (h *Handler) QueryExport(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	org := r.URL.Query().Get("organization")

	result, err := h.Queries.Summarize(org, from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	workbook, err := querylog.BuildWorkbook(result.ExportRows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	store.SaveAudit("query_export", fmt.Sprintf("org=%s from=%s to=%s rows=%d", org, from.Format("2006-01-02"), to.Format("2006-01-02"), result.Total))

	filename := fmt.Sprintf("vin_queries_%s_%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Write(workbook)
}

// Organizations lists distinct organization names
// @Summary List organizations
// @Description Distinct organization names present in the query log, for the filter dropdown
// @Tags queries
// @Produce json
// @Success 200 {object} map[string]interface{} "Organization names"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /queries/organizations [get]
func (h *Handler) Organizations(w http.ResponseWriter, r *http.Request) {
	names, err := h.Queries.Organizations()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"organizations": names,
		"count":         len(names),
	})
}

// QueriesReload drops the cached query-log records
// @Summary Reload the query log
// @Description Invalidate the query-log cache; the next request reloads from the data directory
// @Tags queries
// @Produce json
// @Success 200 {object} map[string]interface{} "Cache invalidated"
// @Router /queries/reload [post]
func (h *Handler) QueriesReload(w http.ResponseWriter, r *http.Request) {
	h.Queries.Invalidate()
	store.SaveAudit("querylog_reload", "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "query-log cache invalidated",
	})
}
