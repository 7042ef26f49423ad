package filecache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pampered-pooch/site-api/internal/domain"
)

// Store persists the review cache as a single JSON document on disk.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the cache document. A missing, unreadable, or malformed file is
// an empty cache, not an error — the service will just fetch fresh data.
func (s *Store) Load(_ context.Context) (*domain.ReviewCache, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("read reviews cache", "path", s.path, "err", err)
		}
		return &domain.ReviewCache{}, nil
	}

	var cache domain.ReviewCache
	if err := json.Unmarshal(raw, &cache); err != nil || cache.Data == nil {
		slog.Warn("malformed reviews cache, starting empty", "path", s.path, "err", err)
		return &domain.ReviewCache{}, nil
	}
	return &cache, nil
}

// Save writes the cache document, replacing any previous content.
func (s *Store) Save(_ context.Context, cache *domain.ReviewCache) error {
	raw, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reviews cache: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("write reviews cache: %w", err)
	}
	return nil
}
