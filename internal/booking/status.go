package booking

import (
	"errors"
	"fmt"

	"github.com/gdg-garage/tour-api/internal/models"
)

var (
	ErrNotFound          = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPendingVerification: {models.StatusVerified, models.StatusRejected},
	models.StatusVerified:            {models.StatusPendingVerification},
	models.StatusRejected:            {models.StatusPendingVerification},
}

func CanTransition(from, to models.BookingStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// SetStatus returns a copy of bookings with the matching record moved to
// status, along with the updated record. Asking for the status a booking
// already has is a no-op.
func SetStatus(bookings []models.Booking, id string, status models.BookingStatus) ([]models.Booking, models.Booking, error) {
	for i, b := range bookings {
		if b.ID != id {
			continue
		}
		if b.Status != status && !CanTransition(b.Status, status) {
			return nil, models.Booking{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, status)
		}

		out := make([]models.Booking, len(bookings))
		copy(out, bookings)
		out[i].Status = status
		return out, out[i], nil
	}
	return nil, models.Booking{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
