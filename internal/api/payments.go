package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hotelbook/booking-web/internal/model"
)

// ProcessPaymentRequest submits a payment for an existing booking. The
// discount is optional and validated against the total server-side.
type ProcessPaymentRequest struct {
	BookingID      uint64 `json:"bookingId"`
	Method         string `json:"method"`
	DiscountAmount int64  `json:"discountAmount,omitempty"`
}

// ProcessPayment settles a booking. Settlement itself is entirely
// backend-owned; a failure leaves the booking untouched.
func (c *Client) ProcessPayment(ctx context.Context, token string, req ProcessPaymentRequest) (model.Payment, error) {
	var payment model.Payment
	if err := c.do(ctx, http.MethodPost, "/payments", token, nil, req, &payment); err != nil {
		return model.Payment{}, err
	}
	return payment, nil
}

// ListPayments fetches the caller's payment history.
func (c *Client) ListPayments(ctx context.Context, token string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := c.do(ctx, http.MethodGet, "/payments", token, nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPaymentByBooking fetches the payment attached to a booking.
func (c *Client) GetPaymentByBooking(ctx context.Context, token string, bookingID uint64) (model.Payment, error) {
	var payment model.Payment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/booking/%d", bookingID), token, nil, nil, &payment); err != nil {
		return model.Payment{}, err
	}
	return payment, nil
}
