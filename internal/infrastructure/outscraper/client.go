package outscraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pampered-pooch/site-api/internal/config"
)

const baseURL = "https://api.outscraper.cloud/google-maps-reviews"

// Review is a single raw review as returned by the Outscraper API.
// Older responses carry the rating in review_rating and attached images as
// review_images objects; newer ones use rating and review_img_urls.
type Review struct {
	ReviewID        string       `json:"review_id"`
	ReviewTimestamp int64        `json:"review_timestamp"`
	AuthorTitle     string       `json:"author_title"`
	AuthorImage     string       `json:"author_image"`
	ReviewText      string       `json:"review_text"`
	Rating          flexNumber   `json:"rating"`
	ReviewRating    flexNumber   `json:"review_rating"`
	ReviewImgURLs   []string     `json:"review_img_urls"`
	ReviewImages    []imageEntry `json:"review_images"`
}

type imageEntry struct {
	Image string `json:"image"`
}

// flexNumber accepts a JSON number or a numeric string.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	if len(b) > 1 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexNumber(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexNumber(n)
	return nil
}

// RatingValue returns the review's rating, whichever field carried it.
func (r Review) RatingValue() int {
	if r.Rating != 0 {
		return int(r.Rating)
	}
	return int(r.ReviewRating)
}

// ImageURLs returns attached image URLs regardless of response shape.
func (r Review) ImageURLs() []string {
	if r.ReviewImgURLs != nil {
		return r.ReviewImgURLs
	}
	urls := make([]string, 0, len(r.ReviewImages))
	for _, img := range r.ReviewImages {
		urls = append(urls, img.Image)
	}
	return urls
}

type response struct {
	Data []struct {
		ReviewsData []Review `json:"reviews_data"`
		Reviews     []Review `json:"reviews"`
	} `json:"data"`
}

// Client fetches Google reviews for one place through Outscraper.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	placeID      string
	reviewsLimit int
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		baseURL:      baseURL,
		apiKey:       cfg.OutscraperAPIKey,
		placeID:      cfg.GooglePlaceID,
		reviewsLimit: cfg.ReviewsLimit,
	}
}

// Fetch returns the raw review batch for the configured place, newest first.
func (c *Client) Fetch(ctx context.Context) ([]Review, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("OUTSCRAPER_API_KEY not configured")
	}

	q := url.Values{}
	q.Set("query", c.placeID)
	q.Set("reviewsLimit", strconv.Itoa(c.reviewsLimit))
	q.Set("limit", "1")
	q.Set("sort", "newest")
	q.Set("language", "en")
	q.Set("async", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch reviews: unexpected status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode reviews response: %w", err)
	}
	if len(body.Data) == 0 {
		return nil, fmt.Errorf("empty or invalid response from review API")
	}

	place := body.Data[0]
	if place.ReviewsData != nil {
		return place.ReviewsData, nil
	}
	return place.Reviews, nil
}
