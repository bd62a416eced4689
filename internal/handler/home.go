package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves the landing page and the public notice board.
type HomeHandler struct {
	*Base
}

func NewHomeHandler(b *Base) *HomeHandler { return &HomeHandler{Base: b} }

// Home renders the landing page with the published notices.
func (h *HomeHandler) Home(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	notices, err := h.API.ListNotices(ctx)
	if err != nil {
		// The landing page still loads when the notice feed is down.
		return h.render(c, "home.html", map[string]any{
			"Title": "HotelBook",
			"Error": errMessage(err),
		})
	}
	return h.render(c, "home.html", map[string]any{
		"Title":   "HotelBook",
		"Notices": notices,
	})
}

// Notice renders one announcement.
func (h *HomeHandler) Notice(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return redirectError(c, "/", "unknown notice")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	notice, err := h.API.GetNotice(ctx, id)
	if err != nil {
		return h.failBackend(c, "/", err)
	}
	return h.render(c, "notice.html", map[string]any{
		"Title":      notice.Title,
		"NoticeItem": notice,
	})
}
