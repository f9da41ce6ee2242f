package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
)

// FileStore optionally mirrors generated media onto the local filesystem so a
// user can keep results beyond the in-memory TTL. It is off unless an output
// directory is configured.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// SaveResult writes every media part of a downloadable result to disk and
// returns the relative keys written. A nil store is a no-op so callers do not
// need to branch on configuration.
func (s *FileStore) SaveResult(res *domain.OperationResult) ([]string, error) {
	if s == nil || !res.Downloadable() {
		return nil, nil
	}
	var keys []string
	idx := 0
	for _, part := range res.Parts {
		if !part.IsMedia() {
			continue
		}
		idx++
		key := fmt.Sprintf("%s/%s-%02d%s", res.Mode, res.ID, idx, extensionFor(part.MIMEType))
		written, err := s.write(key, part.Data)
		if err != nil {
			return keys, err
		}
		keys = append(keys, written)
	}
	return keys, nil
}

func (s *FileStore) write(key string, data []byte) (string, error) {
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return cleanKey, nil
}

func extensionFor(mime string) string {
	switch {
	case strings.HasPrefix(mime, "video/"):
		return ".mp4"
	case mime == "image/jpeg":
		return ".jpg"
	default:
		return ".png"
	}
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
