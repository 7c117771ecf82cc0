package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-api/internal/app"
	"github.com/gdg-garage/tour-api/internal/booking"
	"github.com/gdg-garage/tour-api/internal/itinerary"
)

// apiError maps domain errors onto HTTP problems.
func apiError(err error) error {
	switch {
	case errors.Is(err, app.ErrNotPersisted):
		return huma.Error503ServiceUnavailable("Change applied but not saved. Repeating the same request retries the save and does not apply it twice", err)
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, itinerary.ErrPackageNotFound),
		errors.Is(err, itinerary.ErrDayNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, itinerary.ErrLastPackage):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, booking.ErrInvalidBooking),
		errors.Is(err, itinerary.ErrInvalidDay),
		errors.Is(err, itinerary.ErrInvalidDate):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		log.Printf("Unhandled error: %v", err)
		return huma.Error500InternalServerError("Internal error")
	}
}

func confirmationRequired() error {
	return huma.NewError(http.StatusPreconditionRequired, "Confirmation required: repeat the request with confirm=true")
}
