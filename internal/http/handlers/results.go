package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
	"github.com/EdwinBikes/videos-con-IA/pkg/zip"
)

// DownloadResult streams the primary media of a stored result as an
// attachment. For edits that is the last inline image the model returned.
func (a *App) DownloadResult(w http.ResponseWriter, r *http.Request) {
	res, ok := a.Engine.Result(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, localized(r.Context(), "not_found"))
		return
	}

	part, ok := res.Media()
	if !ok {
		a.error(w, http.StatusNotFound, localized(r.Context(), "not_found"))
		return
	}

	mime := part.MIMEType
	if mime == "" {
		mime = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Mode.DownloadFilename()))
	_, _ = w.Write(part.Data)
}

// ArchiveResult bundles every media part of a result into a single zip
// download. Useful when an edit response carries more than one image.
func (a *App) ArchiveResult(w http.ResponseWriter, r *http.Request) {
	res, ok := a.Engine.Result(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, localized(r.Context(), "not_found"))
		return
	}

	var assets []zip.Asset
	for i, part := range res.Parts {
		if !part.IsMedia() {
			continue
		}
		assets = append(assets, zip.Asset{
			Filename: archiveEntryName(res.Mode, i, part.MIMEType),
			MIME:     part.MIMEType,
			Data:     part.Data,
		})
	}
	if len(assets) == 0 {
		a.error(w, http.StatusNotFound, localized(r.Context(), "not_found"))
		return
	}

	blob := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archiveName(res.Mode)))
	_, _ = w.Write(blob)
}

func archiveName(mode domain.Mode) string {
	base := mode.DownloadFilename()
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base + ".zip"
}

func archiveEntryName(mode domain.Mode, index int, mime string) string {
	base := mode.DownloadFilename()
	ext := extensionForMIME(mime)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		if ext == "" {
			ext = base[idx:]
		}
		base = base[:idx]
	}
	return fmt.Sprintf("%s-%02d%s", base, index+1, ext)
}

func extensionForMIME(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	default:
		return ""
	}
}
