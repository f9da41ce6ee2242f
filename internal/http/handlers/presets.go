package handlers

import (
	"net/http"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
	"github.com/EdwinBikes/videos-con-IA/internal/providers/prompt"
)

// Presets returns the example prompts for a mode, defaulting to edit.
func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	mode := domain.ModeEdit
	if parsed, err := domain.ParseMode(r.URL.Query().Get("mode")); err == nil {
		mode = parsed
	}
	a.json(w, http.StatusOK, map[string]any{
		"mode":    string(mode),
		"presets": prompt.ForMode(mode),
	})
}
