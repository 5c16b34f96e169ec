package handlers

import (
	"encoding/json"
	"net/http"

	"scriptoria/internal/artifacts"
	"scriptoria/internal/imagechain"
	"scriptoria/internal/infra"
)

// App bundles the wired services the handlers need.
type App struct {
	Logger       infra.Logger
	Orchestrator *artifacts.Orchestrator
	Store        *artifacts.SessionStore
	Chain        *imagechain.Chain
}

// NewApp builds the handler container.
func NewApp(logger infra.Logger, orchestrator *artifacts.Orchestrator, store *artifacts.SessionStore, chain *imagechain.Chain) *App {
	return &App{
		Logger:       logger,
		Orchestrator: orchestrator,
		Store:        store,
		Chain:        chain,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}
