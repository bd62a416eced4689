package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hotelbook/booking-web/internal/api"
	"github.com/hotelbook/booking-web/internal/flow"
	"github.com/hotelbook/booking-web/internal/model"
	"github.com/hotelbook/booking-web/internal/view"
)

// BookingHandler serves the two-step reservation: details first, then
// payment for the booking the backend created. The flow state machine
// enforces the ordering; these handlers only adapt forms and pages to
// it.
type BookingHandler struct {
	*Base
}

func NewBookingHandler(b *Base) *BookingHandler { return &BookingHandler{Base: b} }

// ----- forms -----

type bookingForm struct {
	CheckInDate     string `form:"checkInDate" validate:"required"`
	CheckOutDate    string `form:"checkOutDate" validate:"required"`
	Guests          int    `form:"guests" validate:"required"`
	SpecialRequests string `form:"specialRequests" validate:"max=500"`
}

type paymentForm struct {
	Method         string `form:"method" validate:"required"`
	DiscountAmount int64  `form:"discountAmount" validate:"min=0"`
}

// bookingService adapts the API client to the booking flow, binding
// the session token so the flow itself stays transport-free.
type bookingService struct {
	api   *api.Client
	token string
}

func (s bookingService) CreateBooking(ctx context.Context, draft model.BookingDraft) (model.Booking, error) {
	return s.api.CreateBooking(ctx, s.token, api.CreateBookingRequest{
		RoomID:          draft.RoomID,
		CheckInDate:     draft.CheckInDate,
		CheckOutDate:    draft.CheckOutDate,
		Guests:          draft.Guests,
		SpecialRequests: draft.SpecialRequests,
	})
}

func (s bookingService) ProcessPayment(ctx context.Context, bookingID uint64, method string, discount int64) (model.Payment, error) {
	return s.api.ProcessPayment(ctx, s.token, api.ProcessPaymentRequest{
		BookingID:      bookingID,
		Method:         method,
		DiscountAmount: discount,
	})
}

// ShowInfo renders step one for a room, pre-filling dates carried over
// from the search and quoting the estimated total when they are valid.
func (h *BookingHandler) ShowInfo(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return redirectError(c, "/rooms", "unknown room")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	room, err := h.API.GetRoom(ctx, token(c), roomID)
	if err != nil {
		return h.failBackend(c, "/rooms", err)
	}

	checkIn := c.QueryParam("checkInDate")
	checkOut := c.QueryParam("checkOutDate")
	data := map[string]any{
		"Title":        "Book " + room.Name,
		"Room":         room,
		"CheckInDate":  checkIn,
		"CheckOutDate": checkOut,
		"Guests":       1,
	}
	if f, err := flow.NewBooking(room, checkIn, checkOut); err == nil {
		if q, err := f.Quote(); err == nil {
			data["Quote"] = q
		}
	}
	return h.render(c, "booking_info.html", data)
}

// SubmitInfo validates the reservation details, submits them exactly
// once and moves the browser to the payment page for the booking the
// backend echoed back.
func (h *BookingHandler) SubmitInfo(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return redirectError(c, "/rooms", "unknown room")
	}
	back := fmt.Sprintf("/rooms/%d/book", roomID)

	var form bookingForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, back, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, back, validationMessage(err))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	room, err := h.API.GetRoom(ctx, token(c), roomID)
	if err != nil {
		return h.failBackend(c, "/rooms", err)
	}

	f, err := flow.NewBooking(room, form.CheckInDate, form.CheckOutDate)
	if err != nil {
		return redirectError(c, back, err.Error())
	}
	if err := f.SetGuests(form.Guests); err != nil {
		return redirectError(c, back, err.Error())
	}
	if err := f.SetSpecialRequests(form.SpecialRequests); err != nil {
		return redirectError(c, back, err.Error())
	}
	if err := f.Confirm(ctx, bookingService{api: h.API, token: token(c)}); err != nil {
		return h.failBackend(c, back, err)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/bookings/%d/pay", f.Booking().ID))
}

// ShowPayment renders step two for an existing booking. The figures on
// the page are the backend's echoed ones, never a local recomputation.
func (h *BookingHandler) ShowPayment(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return redirectError(c, "/mypage", "unknown booking")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	booking, err := h.API.GetBooking(ctx, token(c), bookingID)
	if err != nil {
		return h.failBackend(c, "/mypage", err)
	}
	f, err := flow.ResumePayment(booking)
	if err != nil {
		return redirectError(c, "/mypage", "this booking cannot be paid for")
	}

	return h.render(c, "booking_payment.html", map[string]any{
		"Title":   "Payment",
		"Booking": f.Booking(),
	})
}

// SubmitPayment processes the payment for the booking. A failure keeps
// the browser on the payment page; nothing is retried automatically.
func (h *BookingHandler) SubmitPayment(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return redirectError(c, "/mypage", "unknown booking")
	}
	back := fmt.Sprintf("/bookings/%d/pay", bookingID)

	var form paymentForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, back, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, back, validationMessage(err))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	booking, err := h.API.GetBooking(ctx, token(c), bookingID)
	if err != nil {
		return h.failBackend(c, back, err)
	}
	f, err := flow.ResumePayment(booking)
	if err != nil {
		return redirectError(c, "/mypage", "this booking cannot be paid for")
	}

	payment, err := f.Pay(ctx, bookingService{api: h.API, token: token(c)}, form.Method, form.DiscountAmount)
	if err != nil {
		switch err {
		case flow.ErrBadMethod:
			return redirectError(c, back, "please choose a payment method")
		case flow.ErrBadDiscount:
			return redirectError(c, back, "discount cannot exceed the booking total")
		}
		return h.failBackend(c, back, err)
	}

	msg := fmt.Sprintf("payment of %s received, see you on %s", view.Won(payment.Amount), booking.CheckInDate)
	return redirectNotice(c, "/mypage", msg)
}
