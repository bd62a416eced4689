package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/hotelbook/booking-web/internal/api"
	"github.com/hotelbook/booking-web/internal/middleware"
	"github.com/hotelbook/booking-web/internal/model"
	"github.com/hotelbook/booking-web/internal/pricing"
)

// RoomHandler serves room browsing: the searchable list and the detail
// page with reviews. Both pages work for anonymous visitors; the token
// is attached only when the browser has one.
type RoomHandler struct {
	*Base
}

func NewRoomHandler(b *Base) *RoomHandler { return &RoomHandler{Base: b} }

// token returns the session bearer token, empty for anonymous visits.
func token(c echo.Context) string {
	if s, ok := middleware.SessionFrom(c); ok {
		return s.Token
	}
	return ""
}

// List renders the room catalogue, filtered by availability when both
// dates are supplied. A half-filled date pair is an input error: the
// backend is never asked to guess the missing bound.
func (h *RoomHandler) List(c echo.Context) error {
	checkIn := c.QueryParam("checkInDate")
	checkOut := c.QueryParam("checkOutDate")

	data := map[string]any{
		"Title":        "Rooms",
		"CheckInDate":  checkIn,
		"CheckOutDate": checkOut,
	}

	if (checkIn == "") != (checkOut == "") {
		return redirectError(c, "/rooms", "please fill in both check-in and check-out dates")
	}
	if checkIn != "" {
		if _, err := pricing.Nights(checkIn, checkOut); err != nil {
			return redirectError(c, "/rooms", err.Error())
		}
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	rooms, err := h.API.ListRooms(ctx, token(c), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return h.failBackend(c, "/rooms", err)
		}
		// The page itself is the redirect target for other room
		// failures, so it must render even when the list fetch is
		// down: show the banner in place instead of bouncing.
		c.Logger().Errorf("backend call failed: %v", err)
		data["Error"] = errMessage(err)
		return h.render(c, "rooms.html", data)
	}
	data["Rooms"] = rooms
	return h.render(c, "rooms.html", data)
}

// Detail renders one room together with its reviews. The two fetches
// are independent, so they run concurrently.
func (h *RoomHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return redirectError(c, "/rooms", "unknown room")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	var (
		room    model.Room
		reviews []model.Review
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		room, err = h.API.GetRoom(gctx, token(c), id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = h.API.ListRoomReviews(gctx, token(c), id)
		return err
	})
	if err := g.Wait(); err != nil {
		return h.failBackend(c, "/rooms", err)
	}

	return h.render(c, "room_detail.html", map[string]any{
		"Title":        room.Name,
		"Room":         room,
		"Reviews":      reviews,
		"CheckInDate":  c.QueryParam("checkInDate"),
		"CheckOutDate": c.QueryParam("checkOutDate"),
	})
}
