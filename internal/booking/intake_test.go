package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/gdg-garage/tour-api/internal/models"
)

var testPrices = Prices{Adult: 22000, Child: 15000}

func fixedID(id string) func() string {
	return func() string { return id }
}

func TestNew(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		adults   int
		children int
		want     int
	}{
		{"SingleAdult", 1, 0, 22000},
		{"Family", 2, 3, 2*22000 + 3*15000},
		{"MaxParty", 50, 20, 50*22000 + 20*15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Intake{FullName: "Alice Rao", Mobile: "9999999999", Email: "alice@example.com", Adults: tt.adults, Children: tt.children}
			b, err := New(in, testPrices, "pkg-1", now, fixedID("b1"))
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if b.Status != models.StatusPendingVerification {
				t.Errorf("expected status %q, got %q", models.StatusPendingVerification, b.Status)
			}
			if b.TotalAmount != tt.want {
				t.Errorf("expected total %d, got %d", tt.want, b.TotalAmount)
			}
			if b.Timestamp != now.UnixMilli() {
				t.Errorf("expected timestamp %d, got %d", now.UnixMilli(), b.Timestamp)
			}
			if b.ID != "b1" || b.ItineraryID != "pkg-1" {
				t.Errorf("unexpected ids %s/%s", b.ID, b.ItineraryID)
			}
		})
	}
}

func TestNew_UnknownItinerary(t *testing.T) {
	in := Intake{FullName: "Bob", Mobile: "1", Email: "b@example.com", Adults: 1}
	b, err := New(in, testPrices, "", time.Now(), fixedID("b1"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if b.ItineraryID != models.UnknownItineraryID {
		t.Errorf("expected itinerary %q, got %q", models.UnknownItineraryID, b.ItineraryID)
	}
}

func TestNew_PriceSnapshot(t *testing.T) {
	in := Intake{FullName: "Bob", Mobile: "1", Email: "b@example.com", Adults: 2, Children: 1}
	b, _ := New(in, testPrices, "", time.Now(), fixedID("b1"))

	raised := Prices{Adult: 30000, Child: 20000}
	later, _ := New(in, raised, "", time.Now(), fixedID("b2"))

	if b.TotalAmount != 59000 {
		t.Errorf("expected original total 59000, got %d", b.TotalAmount)
	}
	if later.TotalAmount != 80000 {
		t.Errorf("expected new total 80000, got %d", later.TotalAmount)
	}
}

func TestIntake_Validate(t *testing.T) {
	valid := Intake{FullName: "Alice", Mobile: "9", Email: "a@example.com", Adults: 1}

	tests := []struct {
		name   string
		mutate func(*Intake)
	}{
		{"BlankName", func(in *Intake) { in.FullName = "   " }},
		{"NoMobile", func(in *Intake) { in.Mobile = "" }},
		{"NoEmail", func(in *Intake) { in.Email = "" }},
		{"NoAdults", func(in *Intake) { in.Adults = 0 }},
		{"TooManyAdults", func(in *Intake) { in.Adults = 51 }},
		{"NegativeChildren", func(in *Intake) { in.Children = -1 }},
		{"TooManyChildren", func(in *Intake) { in.Children = 21 }},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid intake, got %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); !errors.Is(err, ErrInvalidBooking) {
				t.Errorf("expected ErrInvalidBooking, got %v", err)
			}
		})
	}
}

func TestPrepend(t *testing.T) {
	existing := []models.Booking{{ID: "old"}}
	out := Prepend(existing, models.Booking{ID: "new"})

	if len(out) != 2 || out[0].ID != "new" || out[1].ID != "old" {
		t.Errorf("unexpected order %+v", out)
	}
	if len(existing) != 1 {
		t.Error("input collection was modified")
	}
}
