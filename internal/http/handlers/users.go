package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scriptoria/internal/middleware"
)

type setUserRequest struct {
	Name string `json:"name"`
}

// SetUser records the caller's display name on their session.
func (a *App) SetUser(w http.ResponseWriter, r *http.Request) {
	var req setUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	sid := middleware.SessionIDFromContext(r.Context())
	a.Store.SetUser(sid, name)
	a.json(w, http.StatusOK, map[string]any{"success": true, "name": name})
}

// GetUser returns the display name recorded for the session, or "".
func (a *App) GetUser(w http.ResponseWriter, r *http.Request) {
	sid := middleware.SessionIDFromContext(r.Context())
	a.json(w, http.StatusOK, map[string]string{"name": a.Store.User(sid)})
}
