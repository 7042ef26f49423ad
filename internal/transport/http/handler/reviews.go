package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pampered-pooch/site-api/internal/domain"
)

const msgReviewsFailed = "Failed to fetch reviews"

// ReviewService is what the handler needs from the review cache.
type ReviewService interface {
	GetReviews(ctx context.Context) ([]domain.Review, error)
}

// ReviewsHandler serves the cached testimonial feed.
type ReviewsHandler struct {
	svc ReviewService
}

func NewReviewsHandler(svc ReviewService) *ReviewsHandler {
	return &ReviewsHandler{svc: svc}
}

// List handles GET /api/reviews. The response is a bare array; a 500 means
// both the upstream and the cache came up empty.
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.GetReviews(r.Context())
	if err != nil {
		slog.Error("get reviews", "err", err)
		writeError(w, http.StatusInternalServerError, msgReviewsFailed)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}
