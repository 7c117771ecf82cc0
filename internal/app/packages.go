package app

import (
	"context"
	"fmt"

	"github.com/gdg-garage/tour-api/internal/itinerary"
	"github.com/gdg-garage/tour-api/internal/models"
	"github.com/gdg-garage/tour-api/internal/storage"
)

// NewDayDraft returns an unsaved placeholder day for the package.
func (a *App) NewDayDraft(packageID string) (models.ItineraryDay, error) {
	p, ok := a.Package(packageID)
	if !ok {
		return models.ItineraryDay{}, fmt.Errorf("%w: %s", itinerary.ErrPackageNotFound, packageID)
	}
	return itinerary.NewDayDraft(p.Days, a.newID), nil
}

// SaveDay creates or replaces a day and returns the updated package.
func (a *App) SaveDay(ctx context.Context, packageID string, day models.ItineraryDay) (models.ItineraryPackage, error) {
	var saved models.ItineraryPackage
	err := a.updatePackages(ctx, func(current []models.ItineraryPackage) ([]models.ItineraryPackage, error) {
		next, err := itinerary.UpdateDays(current, packageID, func(days []models.ItineraryDay) ([]models.ItineraryDay, error) {
			return itinerary.SaveDay(days, day)
		})
		if err != nil {
			return nil, err
		}
		saved, _ = itinerary.Find(next, packageID)
		return next, nil
	})
	return saved, err
}

func (a *App) DeleteDay(ctx context.Context, packageID, dayID string) error {
	return a.updatePackages(ctx, func(current []models.ItineraryPackage) ([]models.ItineraryPackage, error) {
		return itinerary.UpdateDays(current, packageID, func(days []models.ItineraryDay) ([]models.ItineraryDay, error) {
			return itinerary.DeleteDay(days, dayID)
		})
	})
}

// DuplicatePackage copies a package to a new start date. An empty startDate
// is a cancelled request: nothing is created or written. Repeating a request
// whose save failed returns the copy already made.
func (a *App) DuplicatePackage(ctx context.Context, id, startDate string) (models.ItineraryPackage, bool, error) {
	if startDate == "" {
		if _, ok := a.Package(id); !ok {
			return models.ItineraryPackage{}, false, fmt.Errorf("%w: %s", itinerary.ErrPackageNotFound, id)
		}
		return models.ItineraryPackage{}, false, nil
	}

	var dup models.ItineraryPackage
	err := a.updatePackages(ctx, func(current []models.ItineraryPackage) ([]models.ItineraryPackage, error) {
		if a.unsaved[storage.PackagesKey] && a.lastDup.source == id && a.lastDup.startDate == startDate {
			if p, ok := itinerary.Find(current, a.lastDup.id); ok {
				dup = p
				return current, nil
			}
		}

		next, p, _, err := itinerary.Duplicate(current, id, startDate, a.newID)
		if err != nil {
			return nil, err
		}
		dup = p
		a.lastDup = duplicateRequest{id, startDate, p.ID}
		return next, nil
	})
	if err != nil && dup.ID == "" {
		return models.ItineraryPackage{}, false, err
	}
	return dup, true, err
}

func (a *App) DeletePackage(ctx context.Context, id string) error {
	return a.updatePackages(ctx, func(current []models.ItineraryPackage) ([]models.ItineraryPackage, error) {
		return itinerary.Delete(current, id)
	})
}

func (a *App) SetActivePackage(ctx context.Context, id string) error {
	return a.updatePackages(ctx, func(current []models.ItineraryPackage) ([]models.ItineraryPackage, error) {
		return itinerary.SetActive(current, id)
	})
}

func (a *App) ChangePackageDates(ctx context.Context, id, startDate, endDate string) (models.ItineraryPackage, error) {
	var changed models.ItineraryPackage
	err := a.updatePackages(ctx, func(current []models.ItineraryPackage) ([]models.ItineraryPackage, error) {
		next, err := itinerary.ChangeDates(current, id, startDate, endDate)
		if err != nil {
			return nil, err
		}
		changed, _ = itinerary.Find(next, id)
		return next, nil
	})
	return changed, err
}
