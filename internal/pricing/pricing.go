// Package pricing derives the number of nights stayed and the total
// price of a stay from a room's nightly rate and a calendar date range.
// The backend remains the pricing authority; these figures are only
// shown to the user before a booking exists.
package pricing

import (
	"errors"
	"math"
	"time"
)

// DateLayout is the calendar date format used across the booking API.
// Dates carry no time-of-day semantics.
const DateLayout = "2006-01-02"

// ErrMissingDate is returned when either end of the range is absent.
// Callers must not display a total in this case.
var ErrMissingDate = errors.New("check-in and check-out dates are required")

// ErrInvalidRange is returned when the check-out date is not strictly
// after the check-in date. The range is surfaced as an input error,
// never clamped to zero or one night.
var ErrInvalidRange = errors.New("check-out date must be after check-in date")

// Quote is a client-side price estimate for a stay.
type Quote struct {
	Nights int   // nights stayed, always >= 1
	Total  int64 // Nights x nightly rate, whole currency units
}

// Nights returns the number of nights between two calendar dates. The
// elapsed time is rounded up to whole days, so a partial-day difference
// introduced by timezone skew still counts as a full night.
func Nights(checkIn, checkOut string) (int, error) {
	if checkIn == "" || checkOut == "" {
		return 0, ErrMissingDate
	}
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0, ErrMissingDate
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0, ErrMissingDate
	}
	if !out.After(in) {
		return 0, ErrInvalidRange
	}
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	return n, nil
}

// Estimate computes a Quote for the given nightly rate and date range.
// The rate must come from the room being booked; no rounding beyond
// the nights ceiling is performed.
func Estimate(pricePerNight int64, checkIn, checkOut string) (Quote, error) {
	n, err := Nights(checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Nights: n, Total: int64(n) * pricePerNight}, nil
}
