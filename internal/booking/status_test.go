package booking

import (
	"errors"
	"testing"

	"github.com/gdg-garage/tour-api/internal/models"
)

func TestSetStatus(t *testing.T) {
	tests := []struct {
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{models.StatusPendingVerification, models.StatusVerified, true},
		{models.StatusPendingVerification, models.StatusRejected, true},
		{models.StatusVerified, models.StatusPendingVerification, true},
		{models.StatusRejected, models.StatusPendingVerification, true},
		{models.StatusPendingVerification, models.StatusPendingVerification, true},
		{models.StatusVerified, models.StatusRejected, false},
		{models.StatusRejected, models.StatusVerified, false},
		{models.StatusVerified, models.StatusVerified, true},
		{models.StatusRejected, models.StatusRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			in := []models.Booking{{ID: "a", Status: models.StatusPendingVerification}, {ID: "b", Status: tt.from}}
			out, updated, err := SetStatus(in, "b", tt.to)

			if !tt.allowed {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetStatus returned error: %v", err)
			}
			if updated.Status != tt.to || out[1].Status != tt.to {
				t.Errorf("expected status %q, got %q", tt.to, out[1].Status)
			}
			if out[0].Status != models.StatusPendingVerification {
				t.Error("unrelated booking changed")
			}
			if in[1].Status != tt.from {
				t.Error("input collection was modified")
			}
		})
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	_, _, err := SetStatus([]models.Booking{{ID: "a"}}, "missing", models.StatusVerified)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
