package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scriptoria/internal/artifacts"
	"scriptoria/internal/middleware"
)

type generateRequest struct {
	Story string `json:"story"`
}

// Generate runs the five-artifact orchestration for a story and caches the
// resulting bundle on the caller's session. Per-artifact failures are part
// of the result payload, not an error response.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	bundle, err := a.Orchestrator.Generate(r.Context(), req.Story)
	if err != nil {
		if errors.Is(err, artifacts.ErrEmptyStory) {
			a.error(w, http.StatusBadRequest, "bad_request", "story input is required")
			return
		}
		a.Logger.Error().Err(err).Msg("generate failed")
		a.error(w, http.StatusInternalServerError, "internal", "generation failed")
		return
	}

	sid := middleware.SessionIDFromContext(r.Context())
	a.Store.SetStoryPreview(sid, req.Story)
	a.Store.PutBundle(sid, bundle)

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"results": bundle.Strings(),
	})
}

// Results returns the session's latest bundle, or an empty object when
// nothing has been generated yet.
func (a *App) Results(w http.ResponseWriter, r *http.Request) {
	sid := middleware.SessionIDFromContext(r.Context())
	bundle, ok := a.Store.Bundle(sid)
	if !ok {
		a.json(w, http.StatusOK, map[string]string{})
		return
	}
	a.json(w, http.StatusOK, bundle.Strings())
}
