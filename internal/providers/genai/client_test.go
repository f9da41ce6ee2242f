package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(Options{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestEditImageParsesOrderedParts(t *testing.T) {
	imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key on request")
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
			t.Errorf("unexpected request shape: %+v", req)
		}
		if got := req.GenerationConfig.ResponseModalities; len(got) != 2 {
			t.Errorf("response modalities = %v", got)
		}
		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{
						{"text": "Here you go."},
						{"inlineData": map[string]string{
							"mimeType": "image/png",
							"data":     base64.StdEncoding.EncodeToString(imageBytes),
						}},
					},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))

	parts, err := client.EditImage(context.Background(), domain.EncodedMedia{Data: "aW1n", MIMEType: "image/jpeg"}, "make it pop")
	if err != nil {
		t.Fatalf("EditImage: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(parts))
	}
	if parts[0].Text != "Here you go." || parts[0].IsMedia() {
		t.Fatalf("first part should be text, got %+v", parts[0])
	}
	if !parts[1].IsMedia() || parts[1].MIMEType != "image/png" {
		t.Fatalf("second part should be inline png, got %+v", parts[1])
	}
	if string(parts[1].Data) != string(imageBytes) {
		t.Fatalf("inline data mismatch")
	}
}

func TestEditImageZeroCandidates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))

	parts, err := client.EditImage(context.Background(), domain.EncodedMedia{Data: "aW1n", MIMEType: "image/png"}, "prompt")
	if err != nil {
		t.Fatalf("EditImage: %v", err)
	}
	if len(parts) != 0 {
		t.Fatalf("expected no parts, got %d", len(parts))
	}
}

func TestEditImageSurfacesAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exhausted"},
		})
	}))

	_, err := client.EditImage(context.Background(), domain.EncodedMedia{Data: "aW1n", MIMEType: "image/png"}, "prompt")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "quota exhausted") {
		t.Fatalf("error should carry api message, got %v", err)
	}
}

func TestVideoJobLifecycle(t *testing.T) {
	polls := 0
	var mux http.ServeMux
	mux.HandleFunc("/models/veo-2.0-generate-001:predictLongRunning", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req predictLongRunningRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Instances) != 1 || req.Instances[0].Image == nil {
			t.Errorf("unexpected instances: %+v", req.Instances)
		}
		if req.Parameters.NumberOfVideos != 1 {
			t.Errorf("numberOfVideos = %d, want 1", req.Parameters.NumberOfVideos)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"name": "operations/op-123", "done": false})
	})
	mux.HandleFunc("/operations/op-123", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		polls++
		if polls < 2 {
			_ = json.NewEncoder(w).Encode(map[string]any{"name": "operations/op-123", "done": false})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "operations/op-123",
			"done": true,
			"response": map[string]any{
				"generateVideoResponse": map[string]any{
					"generatedSamples": []map[string]any{
						{"video": map[string]string{"uri": "/files/clip-1:download"}},
					},
				},
			},
		})
	})
	mux.HandleFunc("/files/clip-1:download", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("video fetch must carry the api key")
		}
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("mp4-bytes"))
	})

	client, _ := newTestClient(t, &mux)

	op, err := client.CreateVideoJob(context.Background(), domain.EncodedMedia{Data: "aW1n", MIMEType: "image/png"}, "animate")
	if err != nil {
		t.Fatalf("CreateVideoJob: %v", err)
	}
	if op.Done {
		t.Fatalf("fresh job should not be done")
	}
	if _, ok := op.VideoURI(); ok {
		t.Fatalf("pending job must not expose a video uri")
	}

	for !op.Done {
		op, err = client.PollVideoJob(context.Background(), op)
		if err != nil {
			t.Fatalf("PollVideoJob: %v", err)
		}
	}
	uri, ok := op.VideoURI()
	if !ok {
		t.Fatalf("done job should expose a video uri")
	}

	blob, mime, err := client.DownloadVideo(context.Background(), uri)
	if err != nil {
		t.Fatalf("DownloadVideo: %v", err)
	}
	if string(blob) != "mp4-bytes" || mime != "video/mp4" {
		t.Fatalf("unexpected download: %q %q", blob, mime)
	}
}

func TestVideoURIAlternateShape(t *testing.T) {
	raw := []byte(`{"name":"operations/x","done":true,"response":{"generatedVideos":[{"video":{"uri":"https://example.com/v.mp4"}}]}}`)
	var op VideoOperation
	if err := json.Unmarshal(raw, &op); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	uri, ok := op.VideoURI()
	if !ok || uri != "https://example.com/v.mp4" {
		t.Fatalf("uri = %q ok=%v", uri, ok)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Options{}); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}
