package storage

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
)

// ResultStore keeps the downloadable resource of the most recent cycle in
// memory with a TTL. Nothing is persisted; a new cycle flushes the previous
// entry so at most one result is live at a time.
type ResultStore struct {
	c *cache.Cache
}

// NewResultStore creates a store whose entries expire after ttl.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultStore{c: cache.New(ttl, 10*time.Minute)}
}

// Put stores a completed result under its ID.
func (s *ResultStore) Put(res *domain.OperationResult) {
	if res == nil || res.ID == "" {
		return
	}
	s.c.SetDefault(res.ID, res)
}

// Get returns the stored result, if it is still live.
func (s *ResultStore) Get(id string) (*domain.OperationResult, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, false
	}
	res, ok := v.(*domain.OperationResult)
	return res, ok
}

// Clear discards every stored result. Called when a new cycle starts.
func (s *ResultStore) Clear() {
	s.c.Flush()
}
