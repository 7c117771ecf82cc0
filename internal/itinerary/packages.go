package itinerary

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gdg-garage/tour-api/internal/models"
)

// PackageNights is the number of days from start to end of a duplicated package.
const PackageNights = 4

var (
	ErrPackageNotFound = errors.New("itinerary package not found")
	ErrLastPackage     = errors.New("cannot delete the only itinerary package")
	ErrInvalidDate     = errors.New("invalid date")
)

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

func Find(pkgs []models.ItineraryPackage, id string) (models.ItineraryPackage, bool) {
	i := indexOfPackage(pkgs, id)
	if i < 0 {
		return models.ItineraryPackage{}, false
	}
	return pkgs[i].Clone(), true
}

// Active returns the package flagged active, if any.
func Active(pkgs []models.ItineraryPackage) (models.ItineraryPackage, bool) {
	for _, p := range pkgs {
		if p.IsActive {
			return p.Clone(), true
		}
	}
	return models.ItineraryPackage{}, false
}

// Displayed is the package shown publicly: the active one, else the first.
func Displayed(pkgs []models.ItineraryPackage) (models.ItineraryPackage, bool) {
	if p, ok := Active(pkgs); ok {
		return p, true
	}
	if len(pkgs) == 0 {
		return models.ItineraryPackage{}, false
	}
	return pkgs[0].Clone(), true
}

// Duplicate copies the package with the given id to a new inactive package
// starting on startDate. An empty startDate means the caller backed out and
// the collection is returned unchanged with created == false.
func Duplicate(pkgs []models.ItineraryPackage, id, startDate string, newID func() string) (out []models.ItineraryPackage, dup models.ItineraryPackage, created bool, err error) {
	src, ok := Find(pkgs, id)
	if !ok {
		return nil, models.ItineraryPackage{}, false, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
	}
	if startDate == "" {
		return ClonePackages(pkgs), models.ItineraryPackage{}, false, nil
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return nil, models.ItineraryPackage{}, false, err
	}

	dup = models.ItineraryPackage{
		ID:        newID(),
		StartDate: start.Format(models.DateLayout),
		EndDate:   start.AddDate(0, 0, PackageNights).Format(models.DateLayout),
		Days:      make([]models.ItineraryDay, len(src.Days)),
		IsActive:  false,
	}
	for i, d := range src.Days {
		d.ID = newID()
		dup.Days[i] = d
	}

	out = append(ClonePackages(pkgs), dup)
	return out, dup.Clone(), true, nil
}

func Delete(pkgs []models.ItineraryPackage, id string) ([]models.ItineraryPackage, error) {
	i := indexOfPackage(pkgs, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
	}
	if len(pkgs) == 1 {
		return nil, ErrLastPackage
	}
	out := ClonePackages(pkgs)
	return slices.Delete(out, i, i+1), nil
}

// SetActive flags exactly the given package as active.
func SetActive(pkgs []models.ItineraryPackage, id string) ([]models.ItineraryPackage, error) {
	if indexOfPackage(pkgs, id) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
	}
	out := ClonePackages(pkgs)
	for i := range out {
		out[i].IsActive = out[i].ID == id
	}
	return out, nil
}

// ChangeDates overwrites both dates. End before start is accepted.
func ChangeDates(pkgs []models.ItineraryPackage, id, startDate, endDate string) ([]models.ItineraryPackage, error) {
	i := indexOfPackage(pkgs, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
	}
	if _, err := ParseDate(startDate); err != nil {
		return nil, err
	}
	if _, err := ParseDate(endDate); err != nil {
		return nil, err
	}

	out := ClonePackages(pkgs)
	out[i].StartDate = startDate
	out[i].EndDate = endDate
	return out, nil
}

// UpdateDays swaps in a new day list for one package.
func UpdateDays(pkgs []models.ItineraryPackage, id string, fn func([]models.ItineraryDay) ([]models.ItineraryDay, error)) ([]models.ItineraryPackage, error) {
	i := indexOfPackage(pkgs, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
	}
	days, err := fn(pkgs[i].Days)
	if err != nil {
		return nil, err
	}
	out := ClonePackages(pkgs)
	out[i].Days = days
	return out, nil
}

func indexOfPackage(pkgs []models.ItineraryPackage, id string) int {
	return slices.IndexFunc(pkgs, func(p models.ItineraryPackage) bool { return p.ID == id })
}

// ClonePackages returns a deep copy that shares no day storage with pkgs.
func ClonePackages(pkgs []models.ItineraryPackage) []models.ItineraryPackage {
	out := make([]models.ItineraryPackage, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.Clone()
	}
	return out
}
