package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hotelbook/booking-web/internal/model"
)

// CreateBookingRequest carries the booking draft to the backend. The
// server is the final arbiter of availability and pricing.
type CreateBookingRequest struct {
	RoomID          uint64 `json:"roomId"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// CreateBooking submits a draft and returns the created booking. The
// echoed fields, including totalPrice, are authoritative from here on.
func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (model.Booking, error) {
	var booking model.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", token, nil, req, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// ListBookings fetches the caller's bookings.
func (c *Client) ListBookings(ctx context.Context, token string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", token, nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches one of the caller's bookings by id.
func (c *Client) GetBooking(ctx context.Context, token string, id uint64) (model.Booking, error) {
	var booking model.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", id), token, nil, nil, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// CancelBooking asks the backend to cancel a booking. On success the
// caller refreshes its list; on failure prior state stays displayed.
func (c *Client) CancelBooking(ctx context.Context, token string, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), token, nil, nil, nil)
}
