package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
	"github.com/EdwinBikes/videos-con-IA/internal/orchestrator"
)

type generateRequest struct {
	Mode   string `json:"mode"`
	Prompt string `json:"prompt"`
	// Image is the uploaded file as a browser data URL.
	Image string `json:"image"`
}

type partPayload struct {
	Type     string `json:"type"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
	Text     string `json:"text,omitempty"`
}

type generateResponse struct {
	ID           string        `json:"id,omitempty"`
	Kind         string        `json:"kind"`
	Mode         string        `json:"mode"`
	Message      string        `json:"message,omitempty"`
	Parts        []partPayload `json:"parts,omitempty"`
	DownloadURL  string        `json:"downloadUrl,omitempty"`
	DownloadName string        `json:"downloadName,omitempty"`
	ArchiveURL   string        `json:"archiveUrl,omitempty"`
}

// Generate runs one full generation cycle synchronously. The connection stays
// open for the duration; the browser reads rotating progress from /api/status
// in the meantime.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes())
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, localized(ctx, "bad_request"))
		return
	}

	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		a.error(w, http.StatusBadRequest, localized(ctx, "invalid_mode"))
		return
	}

	var media domain.EncodedMedia
	if req.Image != "" {
		media, err = domain.ParseDataURL(req.Image)
		if err != nil {
			a.error(w, http.StatusBadRequest, localized(ctx, "invalid_image"))
			return
		}
	}

	res, err := a.Engine.Execute(ctx, orchestrator.Input{
		Mode:   mode,
		Prompt: req.Prompt,
		Media:  media,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingMedia):
			a.error(w, http.StatusBadRequest, localized(ctx, "missing_media"))
		case errors.Is(err, domain.ErrEmptyPrompt):
			a.error(w, http.StatusBadRequest, localized(ctx, "empty_prompt"))
		case errors.Is(err, domain.ErrBusy):
			a.error(w, http.StatusConflict, localized(ctx, "busy"))
		default:
			a.Logger.Error().Err(err).Msg("generate: unexpected engine error")
			a.error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	status := http.StatusOK
	if res.Kind == domain.ResultFailure {
		status = http.StatusBadGateway
	}
	a.json(w, status, buildGenerateResponse(res))
}

func (a *App) maxUploadBytes() int64 {
	if a.Config != nil && a.Config.MaxUploadBytes > 0 {
		return a.Config.MaxUploadBytes
	}
	return 25 * 1024 * 1024
}

func buildGenerateResponse(res *domain.OperationResult) generateResponse {
	out := generateResponse{
		ID:      res.ID,
		Kind:    string(res.Kind),
		Mode:    string(res.Mode),
		Message: res.Message,
	}
	mediaCount := 0
	for _, p := range res.Parts {
		if p.IsMedia() {
			mediaCount++
			out.Parts = append(out.Parts, partPayload{
				Type:     "media",
				MIMEType: p.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(p.Data),
			})
		} else if p.Text != "" {
			out.Parts = append(out.Parts, partPayload{Type: "text", Text: p.Text})
		}
	}
	if res.Downloadable() {
		out.DownloadURL = fmt.Sprintf("/api/results/%s/download", res.ID)
		out.DownloadName = res.Mode.DownloadFilename()
		if mediaCount > 1 {
			out.ArchiveURL = fmt.Sprintf("/api/results/%s/archive", res.ID)
		}
	}
	return out
}
