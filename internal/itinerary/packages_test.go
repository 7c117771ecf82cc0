package itinerary

import (
	"errors"
	"testing"

	"github.com/gdg-garage/tour-api/internal/models"
)

func activeCount(pkgs []models.ItineraryPackage) int {
	n := 0
	for _, p := range pkgs {
		if p.IsActive {
			n++
		}
	}
	return n
}

func twoPackages() []models.ItineraryPackage {
	pkgs := DefaultPackages()
	return append(pkgs, models.ItineraryPackage{
		ID: "march", StartDate: "2026-03-01", EndDate: "2026-03-05",
		Days: []models.ItineraryDay{validDay("m1", 1)},
	})
}

func TestDuplicate(t *testing.T) {
	pkgs := DefaultPackages()
	out, dup, created, err := Duplicate(pkgs, DefaultPackageID, "2026-03-01", counterID())
	if err != nil {
		t.Fatalf("Duplicate returned error: %v", err)
	}
	if !created {
		t.Fatal("expected a package to be created")
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(out))
	}
	if dup.StartDate != "2026-03-01" || dup.EndDate != "2026-03-05" {
		t.Errorf("unexpected dates %s..%s", dup.StartDate, dup.EndDate)
	}
	if dup.IsActive {
		t.Error("expected duplicate to be inactive")
	}
	if dup.ID == DefaultPackageID {
		t.Error("expected a new package id")
	}
	if activeCount(out) != 1 {
		t.Errorf("expected exactly one active package, got %d", activeCount(out))
	}

	orig := pkgs[0].Days
	if len(dup.Days) != len(orig) {
		t.Fatalf("expected %d days, got %d", len(orig), len(dup.Days))
	}
	seen := map[string]bool{}
	for _, d := range orig {
		seen[d.ID] = true
	}
	for i, d := range dup.Days {
		if seen[d.ID] {
			t.Errorf("day %d reuses id %s", i, d.ID)
		}
		o := orig[i]
		if d.DayNumber != o.DayNumber || d.Title != o.Title || d.Description != o.Description || d.ImageURL != o.ImageURL {
			t.Errorf("day %d content differs: %+v vs %+v", i, d, o)
		}
	}

	out[0].Days[0].Title = "changed"
	if pkgs[0].Days[0].Title == "changed" {
		t.Error("returned collection shares day storage with the input")
	}
}

func TestDuplicate_MonthRollover(t *testing.T) {
	_, dup, _, err := Duplicate(DefaultPackages(), DefaultPackageID, "2026-02-27", counterID())
	if err != nil {
		t.Fatalf("Duplicate returned error: %v", err)
	}
	if dup.EndDate != "2026-03-03" {
		t.Errorf("expected 2026-03-03, got %s", dup.EndDate)
	}
}

func TestDuplicate_Cancelled(t *testing.T) {
	pkgs := DefaultPackages()
	out, _, created, err := Duplicate(pkgs, DefaultPackageID, "", counterID())
	if err != nil {
		t.Fatalf("expected cancel to be a no-op, got %v", err)
	}
	if created || len(out) != 1 {
		t.Errorf("expected nothing created, got %d packages", len(out))
	}
}

func TestDuplicate_Errors(t *testing.T) {
	if _, _, _, err := Duplicate(DefaultPackages(), "missing", "2026-03-01", counterID()); !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}
	if _, _, _, err := Duplicate(DefaultPackages(), DefaultPackageID, "01/03/2026", counterID()); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Run("LastPackageRefused", func(t *testing.T) {
		pkgs := DefaultPackages()
		if _, err := Delete(pkgs, DefaultPackageID); !errors.Is(err, ErrLastPackage) {
			t.Fatalf("expected ErrLastPackage, got %v", err)
		}
		if len(pkgs) != 1 || pkgs[0].ID != DefaultPackageID {
			t.Error("collection changed after refused delete")
		}
	})

	t.Run("Removes", func(t *testing.T) {
		out, err := Delete(twoPackages(), "march")
		if err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if len(out) != 1 || out[0].ID != DefaultPackageID {
			t.Errorf("unexpected packages %+v", out)
		}
	})

	t.Run("ActiveLeavesNoneActive", func(t *testing.T) {
		out, err := Delete(twoPackages(), DefaultPackageID)
		if err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if activeCount(out) != 0 {
			t.Errorf("expected no active package, got %d", activeCount(out))
		}
		if _, ok := Active(out); ok {
			t.Error("expected Active to report none")
		}
		if p, ok := Displayed(out); !ok || p.ID != "march" {
			t.Errorf("expected display to fall back to first package, got %+v", p)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if _, err := Delete(twoPackages(), "missing"); !errors.Is(err, ErrPackageNotFound) {
			t.Errorf("expected ErrPackageNotFound, got %v", err)
		}
	})
}

func TestSetActive(t *testing.T) {
	pkgs := twoPackages()

	once, err := SetActive(pkgs, "march")
	if err != nil {
		t.Fatalf("SetActive returned error: %v", err)
	}
	twice, err := SetActive(once, "march")
	if err != nil {
		t.Fatalf("second SetActive returned error: %v", err)
	}

	for _, out := range [][]models.ItineraryPackage{once, twice} {
		if activeCount(out) != 1 {
			t.Errorf("expected exactly one active package, got %d", activeCount(out))
		}
		if p, _ := Active(out); p.ID != "march" {
			t.Errorf("expected march active, got %s", p.ID)
		}
	}
	for i := range once {
		if once[i].IsActive != twice[i].IsActive {
			t.Error("expected set active to be idempotent")
		}
	}
	if !pkgs[0].IsActive {
		t.Error("input collection was modified")
	}

	if _, err := SetActive(pkgs, "missing"); !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestChangeDates(t *testing.T) {
	out, err := ChangeDates(DefaultPackages(), DefaultPackageID, "2026-05-10", "2026-05-01")
	if err != nil {
		t.Fatalf("ChangeDates returned error: %v", err)
	}
	if out[0].StartDate != "2026-05-10" || out[0].EndDate != "2026-05-01" {
		t.Errorf("unexpected dates %s..%s", out[0].StartDate, out[0].EndDate)
	}

	if _, err := ChangeDates(DefaultPackages(), DefaultPackageID, "2026-5-1", "2026-05-01"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ChangeDates(DefaultPackages(), "missing", "2026-05-01", "2026-05-05"); !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestUpdateDays(t *testing.T) {
	pkgs := twoPackages()
	out, err := UpdateDays(pkgs, "march", func(days []models.ItineraryDay) ([]models.ItineraryDay, error) {
		return SaveDay(days, validDay("m2", 2))
	})
	if err != nil {
		t.Fatalf("UpdateDays returned error: %v", err)
	}
	if dayIDs(out[1].Days) != "m1m2" {
		t.Errorf("expected m1m2, got %s", dayIDs(out[1].Days))
	}
	if len(pkgs[1].Days) != 1 {
		t.Error("input collection was modified")
	}

	wantErr := errors.New("boom")
	if _, err := UpdateDays(pkgs, "march", func([]models.ItineraryDay) ([]models.ItineraryDay, error) { return nil, wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("expected callback error, got %v", err)
	}
}
