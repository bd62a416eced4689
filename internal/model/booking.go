package model

// Booking status values as reported by the backend. Status transitions
// are server-driven; this application only observes them.
const (
	BookingPending    = "PENDING"
	BookingConfirmed  = "CONFIRMED"
	BookingCheckedIn  = "CHECKED_IN"
	BookingCheckedOut = "CHECKED_OUT"
	BookingCancelled  = "CANCELLED"
	BookingCompleted  = "COMPLETED"
)

// BookingDraft carries user-entered, not-yet-submitted reservation
// parameters. It exists only in transient form state and is never
// persisted anywhere.
type BookingDraft struct {
	RoomID          uint64
	CheckInDate     string // calendar date, "2006-01-02"
	CheckOutDate    string // calendar date, "2006-01-02"
	Guests          int
	SpecialRequests string
}

// Booking is created by the backend in response to a booking
// submission. The echoed fields, including TotalPrice, are the source
// of truth once the booking exists; the client never recomputes them.
type Booking struct {
	ID              uint64 `json:"id"`
	RoomID          uint64 `json:"roomId"`
	RoomName        string `json:"roomName"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	Guests          int    `json:"guests"`
	TotalPrice      int64  `json:"totalPrice"`
	Status          string `json:"status"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Terminal reports whether no further user-initiated transitions apply
// to the booking.
func (b Booking) Terminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}

// CanCancel reports whether a cancel control should be offered for the
// booking. Cancelled and completed bookings are never cancellable.
func (b Booking) CanCancel() bool {
	return !b.Terminal()
}

// CanReview reports whether a review control should be offered for the
// booking. Only completed stays can be reviewed.
func (b Booking) CanReview() bool {
	return b.Status == BookingCompleted
}
