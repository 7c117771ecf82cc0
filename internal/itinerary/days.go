// Package itinerary edits itinerary packages and their days. Every operation
// returns a new collection and leaves its input untouched.
package itinerary

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/gdg-garage/tour-api/internal/models"
)

var (
	ErrDayNotFound = errors.New("itinerary day not found")
	ErrInvalidDay  = errors.New("invalid itinerary day")
)

const (
	DraftTitle       = "New Trip Chapter"
	DraftDescription = "Capture the magic of this day here..."
	DraftImageURL    = "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a?auto=format&fit=crop&q=80&w=800"
)

// NewDayDraft returns a placeholder day numbered after the existing ones.
// It is not part of the package until saved.
func NewDayDraft(days []models.ItineraryDay, newID func() string) models.ItineraryDay {
	return models.ItineraryDay{
		ID:          newID(),
		DayNumber:   len(days) + 1,
		Title:       DraftTitle,
		Description: DraftDescription,
		ImageURL:    DraftImageURL,
	}
}

func ValidateDay(d models.ItineraryDay) error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: id is required", ErrInvalidDay)
	case d.DayNumber < 1:
		return fmt.Errorf("%w: day number must be positive", ErrInvalidDay)
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidDay)
	case strings.TrimSpace(d.Description) == "":
		return fmt.Errorf("%w: description is required", ErrInvalidDay)
	}

	u, err := url.ParseRequestURI(d.ImageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: image URL must be absolute", ErrInvalidDay)
	}
	return nil
}

// SaveDay replaces the day with the same id, or appends it when new, then
// orders the days by day number. Duplicate numbers are allowed.
func SaveDay(days []models.ItineraryDay, day models.ItineraryDay) ([]models.ItineraryDay, error) {
	if err := ValidateDay(day); err != nil {
		return nil, err
	}

	out := slices.Clone(days)
	if i := indexOfDay(out, day.ID); i >= 0 {
		out[i] = day
	} else {
		out = append(out, day)
	}
	sortDays(out)
	return out, nil
}

// DeleteDay removes a day. Remaining days keep their numbers.
func DeleteDay(days []models.ItineraryDay, id string) ([]models.ItineraryDay, error) {
	i := indexOfDay(days, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, id)
	}
	return slices.Delete(slices.Clone(days), i, i+1), nil
}

func indexOfDay(days []models.ItineraryDay, id string) int {
	return slices.IndexFunc(days, func(d models.ItineraryDay) bool { return d.ID == id })
}

func sortDays(days []models.ItineraryDay) {
	slices.SortStableFunc(days, func(a, b models.ItineraryDay) int {
		return a.DayNumber - b.DayNumber
	})
}
