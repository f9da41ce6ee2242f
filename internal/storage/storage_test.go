package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
)

func TestResultStoreSingleLiveResult(t *testing.T) {
	store := NewResultStore(time.Minute)

	first := &domain.OperationResult{ID: "r1", Kind: domain.ResultImage, Mode: domain.ModeEdit,
		Parts: []domain.ResultPart{{Data: []byte{1}, MIMEType: "image/png"}}}
	store.Put(first)

	if got, ok := store.Get("r1"); !ok || got.ID != "r1" {
		t.Fatalf("expected r1 to be live")
	}

	// A new cycle discards the previous resource handle.
	store.Clear()
	if _, ok := store.Get("r1"); ok {
		t.Fatalf("r1 should be discarded after Clear")
	}

	second := &domain.OperationResult{ID: "r2", Kind: domain.ResultVideo, Mode: domain.ModeVideo,
		Parts: []domain.ResultPart{{Data: []byte{2}, MIMEType: "video/mp4"}}}
	store.Put(second)
	if got, ok := store.Get("r2"); !ok || got.Kind != domain.ResultVideo {
		t.Fatalf("expected r2 to be live")
	}
}

func TestResultStoreIgnoresUnidentified(t *testing.T) {
	store := NewResultStore(time.Minute)
	store.Put(nil)
	store.Put(&domain.OperationResult{Kind: domain.ResultImage})
	if _, ok := store.Get(""); ok {
		t.Fatalf("unidentified results must not be stored")
	}
}

func TestFileStoreSaveResult(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	res := &domain.OperationResult{ID: "abc", Kind: domain.ResultImage, Mode: domain.ModeEdit,
		Parts: []domain.ResultPart{
			{Text: "annotation"},
			{Data: []byte("png-bytes"), MIMEType: "image/png"},
			{Data: []byte("jpg-bytes"), MIMEType: "image/jpeg"},
		}}
	keys, err := store.SaveResult(res)
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("keys = %v, want two media files", keys)
	}
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(keys[0])))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("saved bytes mismatch: %q", data)
	}
}

func TestFileStoreNilIsNoop(t *testing.T) {
	var store *FileStore
	keys, err := store.SaveResult(&domain.OperationResult{ID: "x", Kind: domain.ResultImage,
		Parts: []domain.ResultPart{{Data: []byte{1}, MIMEType: "image/png"}}})
	if err != nil || keys != nil {
		t.Fatalf("nil store must be a no-op, got %v %v", keys, err)
	}
}

func TestSanitizeKeyRejectsTraversal(t *testing.T) {
	for _, key := range []string{"", "../escape", "a/../../b"} {
		if _, err := sanitizeKey(key); err == nil {
			t.Fatalf("key %q should be rejected", key)
		}
	}
	cleaned, err := sanitizeKey("./edit/abc-01.png")
	if err != nil || cleaned != "edit/abc-01.png" {
		t.Fatalf("sanitizeKey = %q, %v", cleaned, err)
	}
}
