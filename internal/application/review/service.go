package review

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/infrastructure/outscraper"
)

// Source fetches the raw review batch from the upstream aggregator.
type Source interface {
	Fetch(ctx context.Context) ([]outscraper.Review, error)
}

// CacheStore persists the cached batch between restarts.
type CacheStore interface {
	Load(ctx context.Context) (*domain.ReviewCache, error)
	Save(ctx context.Context, cache *domain.ReviewCache) error
}

// Service owns the single cached review batch. Fresh data is served from
// memory; a stale or empty cache triggers an upstream fetch, and a failed
// fetch falls back to whatever cached data exists, however old.
type Service struct {
	mu     sync.Mutex
	source Source
	store  CacheStore
	cache  *domain.ReviewCache

	now func() time.Time
}

func NewService(source Source, store CacheStore) *Service {
	return &Service{
		source: source,
		store:  store,
		cache:  &domain.ReviewCache{},
		now:    time.Now,
	}
}

// LoadFromStore primes the in-memory cache from durable storage at startup.
func (s *Service) LoadFromStore(ctx context.Context) {
	cache, err := s.store.Load(ctx)
	if err != nil || cache == nil {
		return
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()

	if len(cache.Data) > 0 {
		slog.Info("loaded reviews from cache",
			"count", len(cache.Data),
			"lastFetched", time.UnixMilli(cache.LastFetched).Format(time.RFC3339))
	}
}

// GetReviews returns the current review batch per the cache contract.
// The whole read-refresh-swap runs under one lock so concurrent callers
// never observe a partially updated cache.
func (s *Service) GetReviews(ctx context.Context) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cache.Fresh(now) {
		slog.Info("serving reviews from cache", "count", len(s.cache.Data))
		return append([]domain.Review(nil), s.cache.Data...), nil
	}

	raw, err := s.source.Fetch(ctx)
	if err != nil {
		if len(s.cache.Data) > 0 {
			slog.Warn("upstream review fetch failed, serving stale cache", "err", err)
			return append([]domain.Review(nil), s.cache.Data...), nil
		}
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}

	imported := Import(raw)
	s.cache = &domain.ReviewCache{Data: imported, LastFetched: now.UnixMilli()}

	if err := s.store.Save(ctx, s.cache); err != nil {
		slog.Warn("persist reviews cache", "err", err)
	} else {
		slog.Info("refreshed reviews cache", "count", len(imported))
	}

	return append([]domain.Review(nil), imported...), nil
}

// Import applies the one-shot filter and projection to a raw upstream batch:
// only 5-star reviews with non-blank text survive, in upstream order.
func Import(raw []outscraper.Review) []domain.Review {
	out := make([]domain.Review, 0, len(raw))
	for _, r := range raw {
		if r.RatingValue() != 5 || strings.TrimSpace(r.ReviewText) == "" {
			continue
		}

		id := r.ReviewID
		if id == "" {
			id = strconv.FormatInt(r.ReviewTimestamp, 10)
		}
		images := r.ImageURLs()
		if images == nil {
			images = []string{}
		}

		out = append(out, domain.Review{
			ID:           id,
			Name:         r.AuthorTitle,
			PetName:      domain.PetNameLabel,
			Review:       r.ReviewText,
			Rating:       r.RatingValue(),
			Image:        r.AuthorImage,
			ReviewImages: images,
		})
	}
	return out
}
