package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviewService struct {
	reviews []domain.Review
	err     error
}

func (s *stubReviewService) GetReviews(context.Context) ([]domain.Review, error) {
	return s.reviews, s.err
}

func TestReviewsList_ReturnsBareArray(t *testing.T) {
	svc := &stubReviewService{reviews: []domain.Review{
		{ID: "r1", Name: "A", PetName: domain.PetNameLabel, Review: "Great!", Rating: 5, ReviewImages: []string{}},
	}}

	rec := httptest.NewRecorder()
	NewReviewsHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, domain.PetNameLabel, got[0].PetName)
}

func TestReviewsList_EmptyIsJSONArray(t *testing.T) {
	rec := httptest.NewRecorder()
	NewReviewsHandler(&stubReviewService{}).List(rec, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestReviewsList_Failure(t *testing.T) {
	rec := httptest.NewRecorder()
	NewReviewsHandler(&stubReviewService{err: errors.New("upstream down")}).
		List(rec, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch reviews", decodeError(t, rec))
}
