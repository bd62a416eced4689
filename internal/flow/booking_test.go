package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/hotelbook/booking-web/internal/model"
	"github.com/hotelbook/booking-web/internal/pricing"
)

// fakeBookingService records calls so tests can assert ordering rules.
type fakeBookingService struct {
	created        model.Booking
	createErr      error
	payment        model.Payment
	payErr         error
	createCalls    int
	payCalls       int
	lastDraft      model.BookingDraft
	lastBookingID  uint64
	lastMethod     string
	lastDiscount   int64
}

func (s *fakeBookingService) CreateBooking(_ context.Context, draft model.BookingDraft) (model.Booking, error) {
	s.createCalls++
	s.lastDraft = draft
	return s.created, s.createErr
}

func (s *fakeBookingService) ProcessPayment(_ context.Context, bookingID uint64, method string, discount int64) (model.Payment, error) {
	s.payCalls++
	s.lastBookingID = bookingID
	s.lastMethod = method
	s.lastDiscount = discount
	return s.payment, s.payErr
}

func testRoom() model.Room {
	return model.Room{ID: 7, Name: "Deluxe Ocean", PricePerNight: 100000, Capacity: 2, Available: true}
}

func TestNewBookingRejectsBadRange(t *testing.T) {
	if _, err := NewBooking(testRoom(), "2024-03-04", "2024-03-01"); !errors.Is(err, pricing.ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
	if _, err := NewBooking(testRoom(), "", "2024-03-01"); !errors.Is(err, pricing.ErrMissingDate) {
		t.Fatalf("error = %v, want ErrMissingDate", err)
	}
}

func TestGuestCountBounds(t *testing.T) {
	f, err := NewBooking(testRoom(), "2024-03-01", "2024-03-04")
	if err != nil {
		t.Fatalf("NewBooking returned error: %v", err)
	}
	if err := f.SetGuests(3); err == nil {
		t.Fatal("SetGuests(3) with capacity 2 must be rejected")
	}
	if err := f.SetGuests(0); err == nil {
		t.Fatal("SetGuests(0) must be rejected")
	}
	if err := f.SetGuests(2); err != nil {
		t.Fatalf("SetGuests(2) returned error: %v", err)
	}
	if f.Draft().Guests != 2 {
		t.Fatalf("Guests = %d, want 2", f.Draft().Guests)
	}
}

func TestQuoteWhileCollecting(t *testing.T) {
	f, _ := NewBooking(testRoom(), "2024-03-01", "2024-03-04")
	q, err := f.Quote()
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if q.Nights != 3 || q.Total != 300000 {
		t.Fatalf("Quote = %+v, want 3 nights / 300000", q)
	}
}

func TestPayRequiresCreatedBooking(t *testing.T) {
	f, _ := NewBooking(testRoom(), "2024-03-01", "2024-03-04")
	svc := &fakeBookingService{}
	if _, err := f.Pay(context.Background(), svc, model.PayCard, 0); !errors.Is(err, ErrWrongState) {
		t.Fatalf("Pay before Confirm error = %v, want ErrWrongState", err)
	}
	if svc.payCalls != 0 {
		t.Fatal("payment request was issued without a booking id")
	}
}

func TestConfirmAdvancesOnlyWithBookingID(t *testing.T) {
	f, _ := NewBooking(testRoom(), "2024-03-01", "2024-03-04")
	svc := &fakeBookingService{created: model.Booking{}} // no id echoed
	if err := f.Confirm(context.Background(), svc); !errors.Is(err, ErrNoBooking) {
		t.Fatalf("Confirm without id error = %v, want ErrNoBooking", err)
	}
	if f.State() != CollectingInfo {
		t.Fatal("flow advanced without a booking id")
	}
}

func TestBookingThenPaymentSequence(t *testing.T) {
	f, _ := NewBooking(testRoom(), "2024-03-01", "2024-03-04")
	_ = f.SetGuests(2)
	_ = f.SetSpecialRequests("late check-in")
	svc := &fakeBookingService{
		created: model.Booking{ID: 41, RoomID: 7, TotalPrice: 300000, Status: model.BookingPending},
		payment: model.Payment{ID: 9, BookingID: 41, Amount: 300000, Status: "COMPLETED"},
	}

	if err := f.Confirm(context.Background(), svc); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if f.State() != AwaitingPayment {
		t.Fatalf("state = %v, want AwaitingPayment", f.State())
	}
	if svc.lastDraft.SpecialRequests != "late check-in" || svc.lastDraft.Guests != 2 {
		t.Fatalf("draft sent = %+v", svc.lastDraft)
	}

	p, err := f.Pay(context.Background(), svc, model.PayBankTransfer, 0)
	if err != nil {
		t.Fatalf("Pay returned error: %v", err)
	}
	if svc.lastBookingID != 41 {
		t.Fatalf("payment referenced booking %d, want 41", svc.lastBookingID)
	}
	if p.ID != 9 || f.State() != Done {
		t.Fatalf("payment = %+v, state = %v", p, f.State())
	}
	if svc.createCalls != 1 || svc.payCalls != 1 {
		t.Fatalf("calls = %d create / %d pay, want 1/1", svc.createCalls, svc.payCalls)
	}
}

func TestPayFailureStaysInStep(t *testing.T) {
	f, _ := ResumePayment(model.Booking{ID: 41, TotalPrice: 300000})
	svc := &fakeBookingService{payErr: errors.New("card declined")}
	if _, err := f.Pay(context.Background(), svc, model.PayCard, 0); err == nil {
		t.Fatal("Pay must surface the service error")
	}
	if f.State() != AwaitingPayment {
		t.Fatalf("state = %v, want AwaitingPayment after failure", f.State())
	}
}

func TestPayValidatesMethodAndDiscount(t *testing.T) {
	f, _ := ResumePayment(model.Booking{ID: 41, TotalPrice: 300000})
	svc := &fakeBookingService{}
	if _, err := f.Pay(context.Background(), svc, "BITCOIN", 0); !errors.Is(err, ErrBadMethod) {
		t.Fatalf("error = %v, want ErrBadMethod", err)
	}
	if _, err := f.Pay(context.Background(), svc, model.PayCard, 300001); !errors.Is(err, ErrBadDiscount) {
		t.Fatalf("error = %v, want ErrBadDiscount", err)
	}
	if _, err := f.Pay(context.Background(), svc, model.PayCard, -1); !errors.Is(err, ErrBadDiscount) {
		t.Fatalf("error = %v, want ErrBadDiscount", err)
	}
	if svc.payCalls != 0 {
		t.Fatal("invalid submissions must not reach the network")
	}
}

func TestResumePaymentRequiresID(t *testing.T) {
	if _, err := ResumePayment(model.Booking{}); !errors.Is(err, ErrNoBooking) {
		t.Fatalf("error = %v, want ErrNoBooking", err)
	}
}

func TestResumePaymentRejectsTerminalBooking(t *testing.T) {
	for _, status := range []string{model.BookingCancelled, model.BookingCompleted} {
		if _, err := ResumePayment(model.Booking{ID: 9, Status: status}); !errors.Is(err, ErrWrongState) {
			t.Fatalf("status %s: error = %v, want ErrWrongState", status, err)
		}
	}
	if _, err := ResumePayment(model.Booking{ID: 9, Status: model.BookingPending}); err != nil {
		t.Fatalf("pending booking must resume, got %v", err)
	}
}

func TestServerTotalTrustedAfterConfirm(t *testing.T) {
	// The server may price differently from the client estimate (e.g. a
	// rate change raced the booking). Once the booking exists its echoed
	// figure wins and the flow exposes no recomputed estimate.
	f, _ := NewBooking(testRoom(), "2024-03-01", "2024-03-04")
	svc := &fakeBookingService{created: model.Booking{ID: 41, TotalPrice: 275000}}
	_ = f.Confirm(context.Background(), svc)
	if f.Booking().TotalPrice != 275000 {
		t.Fatalf("TotalPrice = %d, want server figure 275000", f.Booking().TotalPrice)
	}
	if _, err := f.Quote(); !errors.Is(err, ErrWrongState) {
		t.Fatalf("Quote after Confirm error = %v, want ErrWrongState", err)
	}
}
