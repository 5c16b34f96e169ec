package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"scriptoria/internal/artifacts"
	"scriptoria/internal/export"
	"scriptoria/internal/middleware"
)

type exportRequest struct {
	Content string `json:"content"`
}

// Export streams one artifact as a downloadable document. Literal content in
// the request body wins; otherwise the artifact is resolved from the
// session's cached bundle.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	format := export.Format(chi.URLParam(r, "format"))

	// The body is optional; a missing or malformed one means no literal
	// content was supplied.
	var req exportRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	content := strings.TrimSpace(req.Content)

	if content == "" {
		sid := middleware.SessionIDFromContext(r.Context())
		parsed, err := artifacts.ParseKind(kind)
		if err != nil {
			a.error(w, http.StatusNotFound, "not_found", "no content found, generate first")
			return
		}
		text, ok := a.Store.Artifact(sid, parsed)
		if !ok {
			a.error(w, http.StatusNotFound, "not_found", "no content found, generate first")
			return
		}
		content = text.Export()
	}

	doc, err := export.Render(kind, content, format)
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		a.Logger.Error().Err(err).Str("format", string(format)).Msg("export render failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to render document")
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}
