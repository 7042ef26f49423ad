package domain

import "time"

// ReviewCacheTTL is the freshness window for cached reviews. Older data is
// stale but still servable as a fallback when the upstream fetch fails.
const ReviewCacheTTL = 24 * time.Hour

// PetNameLabel is the placeholder shown where a testimonial names a pet;
// the upstream review API has no pet-name concept.
const PetNameLabel = "Happy Client"

// Review is a testimonial projected from the upstream review API.
// Only 5-star reviews with non-blank text survive the import filter.
// JSON field names match what the site's testimonial component renders.
type Review struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PetName      string   `json:"petName"`
	Review       string   `json:"review"`
	Rating       int      `json:"rating"`
	Image        string   `json:"image,omitempty"`
	ReviewImages []string `json:"reviewImages"`
}

// ReviewCache is the single cached batch of reviews plus its last successful
// fetch time. Replaced wholesale on refresh, never partially updated.
type ReviewCache struct {
	Data        []Review `json:"data"`
	LastFetched int64    `json:"lastFetched"` // Unix milliseconds
}

// Age returns how long ago the cache was last refreshed.
func (c *ReviewCache) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(c.LastFetched))
}

// Fresh reports whether the cache holds data inside the freshness window.
func (c *ReviewCache) Fresh(now time.Time) bool {
	return len(c.Data) > 0 && c.Age(now) < ReviewCacheTTL
}
