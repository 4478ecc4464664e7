package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vin-dashboard/internal/middleware"
	"vin-dashboard/internal/store"
)

// Login exchanges the shared secret for a bearer token
// @Summary Log in
// @Description Exchange the shared dashboard secret for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "Login payload {\"secret\": \"...\"}"
// @Success 200 {object} map[string]interface{} "Session token"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 401 {object} map[string]interface{} "Wrong secret"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Secret string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if !middleware.CheckSecret(body.Secret, h.Secret) {
		http.Error(w, "invalid secret", http.StatusUnauthorized)
		return
	}

	token := h.Sessions.Issue()
	store.SaveAudit("login", "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
	})
}

// History lists recent load cycles and user actions
// @Summary Operational history
// @Description Recent dataset load cycles and audit entries from the bookkeeping database
// @Tags history
// @Produce json
// @Param limit query int false "Maximum entries per list (default 50)"
// @Success 200 {object} map[string]interface{} "Load events and audit entries"
// @Failure 500 {object} map[string]interface{} "Database failure"
// @Router /history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	loads, err := store.ListLoadEvents(limit)
	if err != nil {
		http.Error(w, "Failed to fetch load history", http.StatusInternalServerError)
		return
	}
	audit, err := store.ListAudit(limit)
	if err != nil {
		http.Error(w, "Failed to fetch audit log", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"loads": loads,
		"audit": audit,
	})
}
