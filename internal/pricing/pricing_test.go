package pricing

import (
	"errors"
	"testing"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  error
	}{
		{"three nights", "2024-03-01", "2024-03-04", 3, nil},
		{"single night", "2024-03-01", "2024-03-02", 1, nil},
		{"across month end", "2024-02-28", "2024-03-02", 3, nil},
		{"across year end", "2024-12-30", "2025-01-02", 3, nil},
		{"same day", "2024-03-01", "2024-03-01", 0, ErrInvalidRange},
		{"reversed range", "2024-03-04", "2024-03-01", 0, ErrInvalidRange},
		{"missing check-in", "", "2024-03-04", 0, ErrMissingDate},
		{"missing check-out", "2024-03-01", "", 0, ErrMissingDate},
		{"unparseable date", "03/01/2024", "2024-03-04", 0, ErrMissingDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Nights(tc.checkIn, tc.checkOut)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Nights(%q, %q) error = %v, want %v", tc.checkIn, tc.checkOut, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("Nights(%q, %q) = %d, want %d", tc.checkIn, tc.checkOut, got, tc.want)
			}
		})
	}
}

func TestEstimate(t *testing.T) {
	q, err := Estimate(100000, "2024-03-01", "2024-03-04")
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if q.Nights != 3 {
		t.Fatalf("Nights = %d, want 3", q.Nights)
	}
	if q.Total != 300000 {
		t.Fatalf("Total = %d, want 300000", q.Total)
	}
}

func TestEstimateInvalidRangeNeverZero(t *testing.T) {
	// An equal or reversed range must signal an error rather than
	// produce a zero or negative figure.
	for _, out := range []string{"2024-03-01", "2024-02-28"} {
		if _, err := Estimate(50000, "2024-03-01", out); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("Estimate with check-out %q error = %v, want ErrInvalidRange", out, err)
		}
	}
}

func TestEstimateScalesWithRate(t *testing.T) {
	for _, rate := range []int64{1, 75000, 250000} {
		q, err := Estimate(rate, "2024-05-10", "2024-05-15")
		if err != nil {
			t.Fatalf("Estimate(%d) returned error: %v", rate, err)
		}
		if q.Total != int64(q.Nights)*rate {
			t.Fatalf("Total = %d, want nights(%d) x rate(%d)", q.Total, q.Nights, rate)
		}
	}
}
