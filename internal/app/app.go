// Package app owns the authoritative booking and itinerary collections.
// Every mutation replaces a whole collection in memory and then writes that
// collection to the store; there are no partial updates.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdg-garage/tour-api/internal/booking"
	"github.com/gdg-garage/tour-api/internal/itinerary"
	"github.com/gdg-garage/tour-api/internal/models"
	"github.com/gdg-garage/tour-api/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrNotPersisted means the change was applied in memory but the store
// rejected the write. A restart would lose it.
var ErrNotPersisted = errors.New("change not persisted")

type Options struct {
	Prices booking.Prices
	Now    func() time.Time
	NewID  func() string
}

type App struct {
	store  storage.Store
	prices booking.Prices
	now    func() time.Time
	newID  func() string

	mu       sync.RWMutex
	bookings []models.Booking
	packages []models.ItineraryPackage
	// unsaved marks collections whose last write failed.
	unsaved map[string]bool
	lastDup duplicateRequest
}

type duplicateRequest struct {
	source, startDate, id string
}

func New(store storage.Store, opts Options) *App {
	a := &App{
		store:    store,
		prices:   opts.Prices,
		now:      opts.Now,
		newID:    opts.NewID,
		bookings: []models.Booking{},
		unsaved:  make(map[string]bool),
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	return a
}

// Load reads both collections concurrently and installs them once both
// have arrived.
func (a *App) Load(ctx context.Context) error {
	var (
		bookings []models.Booking
		packages []models.ItineraryPackage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = storage.Load(gctx, a.store, storage.BookingsKey, []models.Booking{})
		return err
	})
	g.Go(func() error {
		var err error
		packages, err = storage.Load(gctx, a.store, storage.PackagesKey, itinerary.DefaultPackages())
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	if len(packages) == 0 {
		log.Println("Stored itinerary has no packages, using defaults")
		packages = itinerary.DefaultPackages()
	}

	a.mu.Lock()
	a.bookings = bookings
	a.packages = packages
	a.mu.Unlock()

	log.Printf("Loaded %d bookings and %d itinerary packages", len(bookings), len(packages))
	return nil
}

func (a *App) Prices() booking.Prices {
	return a.prices
}

func (a *App) Bookings() []models.Booking {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.Booking, len(a.bookings))
	copy(out, a.bookings)
	return out
}

func (a *App) Packages() []models.ItineraryPackage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return itinerary.ClonePackages(a.packages)
}

func (a *App) Package(id string) (models.ItineraryPackage, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return itinerary.Find(a.packages, id)
}

// DisplayedPackage is the package presented on the public site.
func (a *App) DisplayedPackage() (models.ItineraryPackage, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return itinerary.Displayed(a.packages)
}

// persist writes a collection. The write is detached from ctx so a client
// hanging up mid-request does not leave the store behind memory.
func (a *App) persist(ctx context.Context, key string, value any) error {
	if err := storage.Save(context.WithoutCancel(ctx), a.store, key, value); err != nil {
		log.Printf("Failed to persist %s: %v", key, err)
		a.unsaved[key] = true
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	delete(a.unsaved, key)
	return nil
}

func (a *App) updateBookings(ctx context.Context, fn func([]models.Booking) ([]models.Booking, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next, err := fn(a.bookings)
	if err != nil {
		if a.unsaved[storage.BookingsKey] {
			a.persist(ctx, storage.BookingsKey, a.bookings)
		}
		return err
	}
	a.bookings = next
	return a.persist(ctx, storage.BookingsKey, next)
}

func (a *App) updatePackages(ctx context.Context, fn func([]models.ItineraryPackage) ([]models.ItineraryPackage, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next, err := fn(a.packages)
	if err != nil {
		if a.unsaved[storage.PackagesKey] {
			a.persist(ctx, storage.PackagesKey, a.packages)
		}
		return err
	}
	a.packages = next
	return a.persist(ctx, storage.PackagesKey, next)
}
