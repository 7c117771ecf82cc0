// Package booking holds the rules for creating, reviewing and listing
// bookings. Functions here never mutate their input collections.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdg-garage/tour-api/internal/models"
)

const (
	MinAdults   = 1
	MaxAdults   = 50
	MaxChildren = 20
)

var ErrInvalidBooking = errors.New("invalid booking")

type Prices struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
}

// Quote returns the total for a party at the given prices.
func Quote(p Prices, adults, children int) int {
	return adults*p.Adult + children*p.Child
}

type Intake struct {
	FullName string
	Mobile   string
	Email    string
	Adults   int
	Children int
}

func (in Intake) Validate() error {
	switch {
	case strings.TrimSpace(in.FullName) == "":
		return fmt.Errorf("%w: full name is required", ErrInvalidBooking)
	case strings.TrimSpace(in.Mobile) == "":
		return fmt.Errorf("%w: mobile is required", ErrInvalidBooking)
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidBooking)
	case in.Adults < MinAdults || in.Adults > MaxAdults:
		return fmt.Errorf("%w: adults must be between %d and %d", ErrInvalidBooking, MinAdults, MaxAdults)
	case in.Children < 0 || in.Children > MaxChildren:
		return fmt.Errorf("%w: children must be between 0 and %d", ErrInvalidBooking, MaxChildren)
	}
	return nil
}

// New builds a booking awaiting payment verification. The total is priced
// once here and never recomputed.
func New(in Intake, prices Prices, itineraryID string, now time.Time, newID func() string) (models.Booking, error) {
	if err := in.Validate(); err != nil {
		return models.Booking{}, err
	}
	if itineraryID == "" {
		itineraryID = models.UnknownItineraryID
	}

	return models.Booking{
		ID:          newID(),
		ItineraryID: itineraryID,
		FullName:    strings.TrimSpace(in.FullName),
		Mobile:      strings.TrimSpace(in.Mobile),
		Email:       strings.TrimSpace(in.Email),
		Adults:      in.Adults,
		Children:    in.Children,
		TotalAmount: Quote(prices, in.Adults, in.Children),
		Status:      models.StatusPendingVerification,
		Timestamp:   now.UnixMilli(),
	}, nil
}

// SameRequest reports whether b repeats the submission that produced prev.
func SameRequest(prev, b models.Booking) bool {
	return prev.Status == models.StatusPendingVerification &&
		prev.ItineraryID == b.ItineraryID &&
		prev.FullName == b.FullName &&
		prev.Mobile == b.Mobile &&
		prev.Email == b.Email &&
		prev.Adults == b.Adults &&
		prev.Children == b.Children &&
		prev.TotalAmount == b.TotalAmount
}

// Prepend returns a new collection with b first.
func Prepend(bookings []models.Booking, b models.Booking) []models.Booking {
	out := make([]models.Booking, 0, len(bookings)+1)
	out = append(out, b)
	return append(out, bookings...)
}
