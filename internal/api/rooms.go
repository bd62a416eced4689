package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hotelbook/booking-web/internal/model"
)

// ListRooms fetches all rooms, optionally filtered to those available
// for the given date range. Both dates must be supplied together for
// the filter to apply; the backend computes availability.
func (c *Client) ListRooms(ctx context.Context, token, checkInDate, checkOutDate string) ([]model.Room, error) {
	query := url.Values{}
	if checkInDate != "" && checkOutDate != "" {
		query.Set("checkInDate", checkInDate)
		query.Set("checkOutDate", checkOutDate)
	}
	var rooms []model.Room
	if err := c.do(ctx, http.MethodGet, "/rooms", token, query, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom fetches a single room by id.
func (c *Client) GetRoom(ctx context.Context, token string, id uint64) (model.Room, error) {
	var room model.Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d", id), token, nil, nil, &room); err != nil {
		return model.Room{}, err
	}
	return room, nil
}

// ListNotices fetches published notices. No authentication required.
func (c *Client) ListNotices(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	if err := c.do(ctx, http.MethodGet, "/notices", "", nil, nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// GetNotice fetches one notice by id.
func (c *Client) GetNotice(ctx context.Context, id uint64) (model.Notice, error) {
	var notice model.Notice
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notices/%d", id), "", nil, nil, &notice); err != nil {
		return model.Notice{}, err
	}
	return notice, nil
}
