package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hotelbook/booking-web/internal/model"
)

// CreateReviewRequest submits a review for a completed booking.
type CreateReviewRequest struct {
	BookingID uint64 `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// CreateReview posts a review. One review per completed booking is
// expected; the backend enforces it.
func (c *Client) CreateReview(ctx context.Context, token string, req CreateReviewRequest) error {
	return c.do(ctx, http.MethodPost, "/reviews", token, nil, req, nil)
}

// ListRoomReviews fetches the reviews written for a room.
func (c *Client) ListRoomReviews(ctx context.Context, token string, roomID uint64) ([]model.Review, error) {
	var reviews []model.Review
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/room/%d", roomID), token, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListMyReviews fetches the caller's own reviews.
func (c *Client) ListMyReviews(ctx context.Context, token string) ([]model.Review, error) {
	var reviews []model.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/my", token, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
