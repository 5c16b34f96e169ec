package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"scriptoria/internal/imagechain"
)

type shotImageRequest struct {
	ShotDescription string `json:"shot_description"`
}

// ShotImage turns one shot description into concept art. The unconfigured
// outcome is a 200 with setup steps so clients branch on the payload and
// show a setup wizard instead of an error banner.
func (a *App) ShotImage(w http.ResponseWriter, r *http.Request) {
	var req shotImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	res, err := a.Chain.Synthesize(r.Context(), req.ShotDescription)
	if err != nil {
		var notConfigured *imagechain.NotConfiguredError
		switch {
		case errors.Is(err, imagechain.ErrEmptyShot):
			a.error(w, http.StatusBadRequest, "bad_request", "shot_description is required")
		case errors.As(err, &notConfigured):
			a.json(w, http.StatusOK, map[string]any{
				"setup_required": true,
				"steps":          notConfigured.Steps,
			})
		case errors.Is(err, imagechain.ErrPromptGeneration):
			a.error(w, http.StatusBadGateway, "generation_failed", err.Error())
		default:
			a.Logger.Error().Err(err).Msg("image synthesis failed")
			a.error(w, http.StatusBadGateway, "image_failed", err.Error())
		}
		return
	}

	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(res.ImagePNG)
	a.json(w, http.StatusOK, map[string]any{
		"success":      true,
		"image_prompt": res.Prompt,
		"image_url":    dataURI,
	})
}
