package outscraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srvURL string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		baseURL:      srvURL,
		apiKey:       "test-key",
		placeID:      "ChIJtest",
		reviewsLimit: 500,
	}
}

func TestFetch_SendsExpectedRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))

		q := r.URL.Query()
		assert.Equal(t, "ChIJtest", q.Get("query"))
		assert.Equal(t, "500", q.Get("reviewsLimit"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "newest", q.Get("sort"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "false", q.Get("async"))

		w.Write([]byte(`{"data":[{"reviews_data":[{"review_id":"r1","author_title":"A","review_text":"Great!","rating":5}]}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ReviewID)
	assert.Equal(t, 5, got[0].RatingValue())
}

func TestFetch_LegacyResponseShape(t *testing.T) {
	// rating as a string in review_rating, images as objects in review_images
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[{"reviews":[
			{"review_id":"r1","review_text":"Great!","review_rating":"5",
			 "review_images":[{"image":"https://img/one.jpg"},{"image":"https://img/two.jpg"}]}
		]}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].RatingValue())
	assert.Equal(t, []string{"https://img/one.jpg", "https://img/two.jpg"}, got[0].ImageURLs())
}

func TestFetch_PrefersImgURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[{"reviews_data":[
			{"review_id":"r1","review_text":"Great!","rating":5,
			 "review_img_urls":["https://img/new.jpg"],
			 "review_images":[{"image":"https://img/old.jpg"}]}
		]}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"https://img/new.jpg"}, got[0].ImageURLs())
}

func TestFetch_EmptyDataIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty or invalid response")
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
}

func TestFetch_MissingAPIKey(t *testing.T) {
	c := newTestClient("http://unused")
	c.apiKey = ""

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTSCRAPER_API_KEY")
}

func TestFlexNumber_UnparseableStringIsZero(t *testing.T) {
	var f flexNumber
	require.NoError(t, f.UnmarshalJSON([]byte(`"five"`)))
	assert.EqualValues(t, 0, f)
}
