package handlers

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
)

func resultsRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/results/{id}/download", app.DownloadResult)
	r.Get("/api/results/{id}/archive", app.ArchiveResult)
	return r
}

func TestDownloadResultStreamsLastMediaPart(t *testing.T) {
	engine := &stubEngine{stored: map[string]*domain.OperationResult{
		"res-1": {
			ID:   "res-1",
			Kind: domain.ResultImage,
			Mode: domain.ModeEdit,
			Parts: []domain.ResultPart{
				{Data: []byte("first"), MIMEType: "image/png"},
				{Text: "a caption"},
				{Data: []byte("second"), MIMEType: "image/png"},
			},
		},
	}}
	router := resultsRouter(newTestApp(engine))

	req := httptest.NewRequest(http.MethodGet, "/api/results/res-1/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "second" {
		t.Fatalf("must stream the last media part, got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="edited-image.png"` {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestDownloadResultVideoFilename(t *testing.T) {
	engine := &stubEngine{stored: map[string]*domain.OperationResult{
		"res-2": {
			ID:    "res-2",
			Kind:  domain.ResultVideo,
			Mode:  domain.ModeVideo,
			Parts: []domain.ResultPart{{Data: []byte("clip"), MIMEType: "video/mp4"}},
		},
	}}
	router := resultsRouter(newTestApp(engine))

	req := httptest.NewRequest(http.MethodGet, "/api/results/res-2/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="generated-video.mp4"` {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestDownloadResultNotFound(t *testing.T) {
	router := resultsRouter(newTestApp(&stubEngine{stored: map[string]*domain.OperationResult{}}))

	req := httptest.NewRequest(http.MethodGet, "/api/results/gone/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestArchiveResultBundlesMediaParts(t *testing.T) {
	engine := &stubEngine{stored: map[string]*domain.OperationResult{
		"res-3": {
			ID:   "res-3",
			Kind: domain.ResultImage,
			Mode: domain.ModeEdit,
			Parts: []domain.ResultPart{
				{Data: []byte("one"), MIMEType: "image/png"},
				{Text: "skip me"},
				{Data: []byte("two"), MIMEType: "image/jpeg"},
			},
		},
	}}
	router := resultsRouter(newTestApp(engine))

	req := httptest.NewRequest(http.MethodGet, "/api/results/res-3/archive", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("content type = %q", ct)
	}

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatalf("invalid zip: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive entries = %d, want 2 media files", len(zr.File))
	}
	if zr.File[0].Name != "edited-image-01.png" || zr.File[1].Name != "edited-image-03.jpg" {
		t.Fatalf("unexpected entry names: %q, %q", zr.File[0].Name, zr.File[1].Name)
	}
}
