package app

import (
	"context"

	"github.com/gdg-garage/tour-api/internal/booking"
	"github.com/gdg-garage/tour-api/internal/itinerary"
	"github.com/gdg-garage/tour-api/internal/models"
	"github.com/gdg-garage/tour-api/internal/storage"
)

// SubmitBooking records a new booking against the active package. On
// ErrNotPersisted the returned booking is still valid and listed, and
// submitting the same details again retries the save without adding a
// second booking.
func (a *App) SubmitBooking(ctx context.Context, in booking.Intake) (models.Booking, error) {
	var created models.Booking
	err := a.updateBookings(ctx, func(current []models.Booking) ([]models.Booking, error) {
		// a.mu is held by updateBookings.
		itineraryID := models.UnknownItineraryID
		if p, ok := itinerary.Active(a.packages); ok {
			itineraryID = p.ID
		}

		b, err := booking.New(in, a.prices, itineraryID, a.now(), a.newID)
		if err != nil {
			return nil, err
		}
		if a.unsaved[storage.BookingsKey] && len(current) > 0 && booking.SameRequest(current[0], b) {
			created = current[0]
			return current, nil
		}
		created = b
		return booking.Prepend(current, b), nil
	})
	return created, err
}

func (a *App) SetBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error) {
	var updated models.Booking
	err := a.updateBookings(ctx, func(current []models.Booking) ([]models.Booking, error) {
		next, b, err := booking.SetStatus(current, id, status)
		updated = b
		return next, err
	})
	return updated, err
}

func (a *App) ApproveBooking(ctx context.Context, id string) (models.Booking, error) {
	return a.SetBookingStatus(ctx, id, models.StatusVerified)
}

func (a *App) RejectBooking(ctx context.Context, id string) (models.Booking, error) {
	return a.SetBookingStatus(ctx, id, models.StatusRejected)
}

func (a *App) ResetBooking(ctx context.Context, id string) (models.Booking, error) {
	return a.SetBookingStatus(ctx, id, models.StatusPendingVerification)
}

// ListBookings filters by term and sorts the current bookings.
func (a *App) ListBookings(term string, sort booking.SortState) []models.Booking {
	return booking.Sort(booking.Filter(a.Bookings(), term), sort)
}

func (a *App) BookingStats() booking.Stats {
	return booking.Summarize(a.Bookings())
}
