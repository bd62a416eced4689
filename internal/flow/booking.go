// Package flow sequences the multi-step user journeys: booking and
// payment, and multi-step registration. Each flow is an explicit state
// machine; progress is never inferred from which controls happen to be
// rendered. Flows hold no transport of their own; the network
// operations they need are injected as narrow interfaces so the state
// rules can be exercised without a backend.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelbook/booking-web/internal/model"
	"github.com/hotelbook/booking-web/internal/pricing"
)

// BookingState enumerates the steps of the booking-and-payment flow.
type BookingState int

const (
	// CollectingInfo: dates, guest count and requests are editable and
	// the displayed total is a live client-side estimate.
	CollectingInfo BookingState = iota
	// AwaitingPayment: a booking exists server-side; its echoed fields
	// are authoritative and the user is choosing a payment method.
	AwaitingPayment
	// Done: payment succeeded; the caller navigates to the account view.
	Done
)

var (
	// ErrNoBooking guards the payment step: no payment call may ever
	// reference a booking id that has not been returned by the backend.
	ErrNoBooking = errors.New("no booking has been created yet")

	// ErrWrongState is returned when an operation is invoked outside
	// the step it belongs to.
	ErrWrongState = errors.New("operation not allowed in current step")

	// ErrBadMethod is returned for a payment method outside the
	// enumerated set.
	ErrBadMethod = errors.New("unknown payment method")

	// ErrBadDiscount is returned when the optional discount falls
	// outside [0, total].
	ErrBadDiscount = errors.New("discount amount is out of range")
)

// BookingService is the slice of the backend the booking flow needs.
// The session token is bound by the adapter, not the flow.
type BookingService interface {
	CreateBooking(ctx context.Context, draft model.BookingDraft) (model.Booking, error)
	ProcessPayment(ctx context.Context, bookingID uint64, method string, discount int64) (model.Payment, error)
}

// Booking drives one reservation from parameter collection through
// payment. Construct with NewBooking for step one or ResumePayment for
// a later request that re-enters step two.
type Booking struct {
	state   BookingState
	room    model.Room
	draft   model.BookingDraft
	booking model.Booking
}

// NewBooking starts a flow for the given room and date range. The date
// order invariant is checked up front: an inverted or empty range is an
// input error surfaced before any submission, never clamped.
func NewBooking(room model.Room, checkInDate, checkOutDate string) (*Booking, error) {
	if _, err := pricing.Nights(checkInDate, checkOutDate); err != nil {
		return nil, err
	}
	return &Booking{
		state: CollectingInfo,
		room:  room,
		draft: model.BookingDraft{
			RoomID:       room.ID,
			CheckInDate:  checkInDate,
			CheckOutDate: checkOutDate,
			Guests:       1,
		},
	}, nil
}

// ResumePayment re-enters the payment step for a booking previously
// created server-side, e.g. when the payment page is a separate
// request. The echoed booking is trusted as-is, but a cancelled or
// completed booking has nothing left to pay for and is refused.
func ResumePayment(b model.Booking) (*Booking, error) {
	if b.ID == 0 {
		return nil, ErrNoBooking
	}
	if b.Terminal() {
		return nil, ErrWrongState
	}
	return &Booking{state: AwaitingPayment, booking: b}, nil
}

// State returns the current step.
func (f *Booking) State() BookingState { return f.state }

// Draft returns the editable parameters of step one.
func (f *Booking) Draft() model.BookingDraft { return f.draft }

// Booking returns the server-created booking. Zero until the create
// call has succeeded.
func (f *Booking) Booking() model.Booking { return f.booking }

// SetGuests bounds the guest count to [1, room capacity]. Values
// outside the range are rejected, not clamped, so the user sees the
// constraint instead of a silently altered figure.
func (f *Booking) SetGuests(n int) error {
	if f.state != CollectingInfo {
		return ErrWrongState
	}
	if n < 1 || n > f.room.Capacity {
		return fmt.Errorf("guest count must be between 1 and %d", f.room.Capacity)
	}
	f.draft.Guests = n
	return nil
}

// SetSpecialRequests records the optional free-form request text.
func (f *Booking) SetSpecialRequests(s string) error {
	if f.state != CollectingInfo {
		return ErrWrongState
	}
	f.draft.SpecialRequests = s
	return nil
}

// Quote recomputes the displayed estimate from the room's nightly rate
// and the draft dates. Only meaningful while collecting info; once a
// booking exists the server's figure is displayed instead.
func (f *Booking) Quote() (pricing.Quote, error) {
	if f.state != CollectingInfo {
		return pricing.Quote{}, ErrWrongState
	}
	return pricing.Estimate(f.room.PricePerNight, f.draft.CheckInDate, f.draft.CheckOutDate)
}

// Confirm submits the draft. Exactly one create call is issued; only a
// response carrying a booking id advances the flow to AwaitingPayment.
// From that point the server-echoed fields are the source of truth and
// the client never recomputes the total.
func (f *Booking) Confirm(ctx context.Context, svc BookingService) error {
	if f.state != CollectingInfo {
		return ErrWrongState
	}
	booking, err := svc.CreateBooking(ctx, f.draft)
	if err != nil {
		return err
	}
	if booking.ID == 0 {
		return ErrNoBooking
	}
	f.booking = booking
	f.state = AwaitingPayment
	return nil
}

// Pay submits the payment for the created booking. A failure leaves
// the flow in AwaitingPayment so the user can re-invoke manually; there
// is no automatic retry. Success moves the flow to Done.
func (f *Booking) Pay(ctx context.Context, svc BookingService, method string, discount int64) (model.Payment, error) {
	if f.state != AwaitingPayment {
		return model.Payment{}, ErrWrongState
	}
	if f.booking.ID == 0 {
		return model.Payment{}, ErrNoBooking
	}
	if !model.ValidPaymentMethod(method) {
		return model.Payment{}, ErrBadMethod
	}
	if discount < 0 || discount > f.booking.TotalPrice {
		return model.Payment{}, ErrBadDiscount
	}
	payment, err := svc.ProcessPayment(ctx, f.booking.ID, method, discount)
	if err != nil {
		return model.Payment{}, err
	}
	f.state = Done
	return payment, nil
}
