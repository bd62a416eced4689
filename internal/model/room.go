package model

// Room is the client-side projection of a room as returned by the
// backend. It is read-only from this application's perspective and
// refreshed on demand; the authoritative copy lives server-side.
//
// Fields:
//  ID            - room identifier.
//  Name          - display name.
//  Description   - free-form description.
//  Type          - room category (e.g. STANDARD, DELUXE, SUITE).
//  PricePerNight - nightly rate in whole currency units.
//  Capacity      - maximum number of guests.
//  ImageURL      - optional image location.
//  AverageRating - optional mean review rating.
//  ReviewCount   - number of reviews behind AverageRating.
//  Available     - whether the room can currently be booked.
type Room struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	PricePerNight int64    `json:"pricePerNight"`
	Capacity      int      `json:"capacity"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	Available     bool     `json:"available"`
}
