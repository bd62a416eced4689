package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/hotelbook/booking-web/internal/api"
	"github.com/hotelbook/booking-web/internal/model"
)

// AccountHandler serves the account page and the actions reachable
// from it: profile edits, booking cancellation, review writing and
// account deletion.
type AccountHandler struct {
	*Base
}

func NewAccountHandler(b *Base) *AccountHandler { return &AccountHandler{Base: b} }

// ----- forms -----

type profileForm struct {
	Email    string `form:"email" validate:"required,email"`
	Name     string `form:"name" validate:"required,max=50"`
	Phone    string `form:"phone" validate:"max=20"`
	Password string `form:"password" validate:"omitempty,min=8"`
}

type reviewForm struct {
	BookingID uint64 `form:"bookingId" validate:"required"`
	Rating    int    `form:"rating" validate:"required,min=1,max=5"`
	Comment   string `form:"comment" validate:"max=1000"`
}

// MyPage renders the account view. The four datasets behind the tabs
// are independent reads, so they are fetched concurrently; one failure
// fails the page as a whole.
func (h *AccountHandler) MyPage(c echo.Context) error {
	tab := c.QueryParam("tab")
	switch tab {
	case "bookings", "payments", "reviews", "profile":
	default:
		tab = "bookings"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	tok := token(c)

	var (
		bookings []model.Booking
		payments []model.Payment
		reviews  []model.Review
		profile  model.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = h.API.ListBookings(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = h.API.ListPayments(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = h.API.ListMyReviews(gctx, tok)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = h.API.GetProfile(gctx, tok)
		return err
	})
	if err := g.Wait(); err != nil {
		return h.failBackend(c, "/", err)
	}

	return h.render(c, "mypage.html", map[string]any{
		"Title":    "My Page",
		"Tab":      tab,
		"Bookings": bookings,
		"Payments": payments,
		"Reviews":  reviews,
		"Profile":  profile,
	})
}

// UpdateProfile saves the editable profile fields. A blank password
// field means "keep the current one" and is omitted from the request
// entirely.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	back := "/mypage?tab=profile"
	var form profileForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, back, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, back, validationMessage(err))
	}

	req := api.UpdateProfileRequest{
		Email: form.Email,
		Name:  form.Name,
		Phone: form.Phone,
	}
	if form.Password != "" {
		req.Password = &form.Password
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.API.UpdateProfile(ctx, token(c), req); err != nil {
		return h.failBackend(c, back, err)
	}
	return redirectNotice(c, back, "profile updated")
}

// CancelBooking asks the backend to cancel the booking. Whether the
// cancellation is allowed is the backend's call; the page only hides
// the control for bookings that are already terminal.
func (h *AccountHandler) CancelBooking(c echo.Context) error {
	back := "/mypage?tab=bookings"
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return redirectError(c, back, "unknown booking")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.API.CancelBooking(ctx, token(c), id); err != nil {
		return h.failBackend(c, back, err)
	}
	return redirectNotice(c, back, "booking cancelled")
}

// CreateReview submits a review for a completed stay.
func (h *AccountHandler) CreateReview(c echo.Context) error {
	back := "/mypage?tab=bookings"
	var form reviewForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, back, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, back, validationMessage(err))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	err := h.API.CreateReview(ctx, token(c), api.CreateReviewRequest{
		BookingID: form.BookingID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	})
	if err != nil {
		return h.failBackend(c, back, err)
	}
	return redirectNotice(c, "/mypage?tab=reviews", "thank you for your review")
}

// DeleteAccount removes the account server-side and tears down the
// session.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.API.DeleteAccount(ctx, token(c)); err != nil {
		return h.failBackend(c, "/mypage?tab=profile", err)
	}
	h.clearSession(c)
	return redirectNotice(c, "/login", "your account has been deleted")
}
