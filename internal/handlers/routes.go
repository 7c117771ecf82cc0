package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/tour-api/internal/auth"
	"github.com/gdg-garage/tour-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, authHandler *auth.AuthHandler, bookingHandler *BookingHandler, itineraryHandler *ItineraryHandler) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler)
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Tour Booking API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, humaConfig)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Binary download, not a huma operation
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Get("/admin/bookings/export.xlsx", bookingHandler.HandleExport)
	})

	RegisterAPI(api, authHandler, bookingHandler, itineraryHandler, NewRateLimiter(cfg.BookingRatePerMinute))
}

// RegisterAPI registers every huma operation on api.
func RegisterAPI(api huma.API, authHandler *auth.AuthHandler, bookingHandler *BookingHandler, itineraryHandler *ItineraryHandler, limiter *RateLimiter) {
	protected := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}
	noContent := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
		o.DefaultStatus = http.StatusNoContent
	}

	// Public
	huma.Get(api, "/itinerary", itineraryHandler.HandleGetItinerary)
	huma.Get(api, "/quote", bookingHandler.HandleQuote)
	huma.Get(api, "/payment/qr.png", bookingHandler.HandleQR)
	huma.Post(api, "/bookings", bookingHandler.HandleCreate, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
		o.Middlewares = append(o.Middlewares, limiter.Middleware(api))
	})

	// Auth
	huma.Post(api, "/admin/login", authHandler.HandleLogin)
	huma.Post(api, "/admin/logout", authHandler.HandleLogout)
	huma.Get(api, "/admin/session", authHandler.HandleSession, protected)

	// Bookings
	huma.Get(api, "/admin/bookings", bookingHandler.HandleList, protected)
	huma.Post(api, "/admin/bookings/{id}/approve", bookingHandler.HandleApprove, protected)
	huma.Post(api, "/admin/bookings/{id}/reject", bookingHandler.HandleReject, protected)
	huma.Post(api, "/admin/bookings/{id}/reset", bookingHandler.HandleReset, protected)

	// Packages
	huma.Get(api, "/admin/packages", itineraryHandler.HandleListPackages, protected)
	huma.Post(api, "/admin/packages/{id}/duplicate", itineraryHandler.HandleDuplicate, protected)
	huma.Delete(api, "/admin/packages/{id}", itineraryHandler.HandleDeletePackage, noContent)
	huma.Post(api, "/admin/packages/{id}/activate", itineraryHandler.HandleActivate, protected)
	huma.Put(api, "/admin/packages/{id}/dates", itineraryHandler.HandleChangeDates, protected)
	huma.Post(api, "/admin/packages/{id}/days/draft", itineraryHandler.HandleDayDraft, protected)
	huma.Put(api, "/admin/packages/{id}/days/{dayId}", itineraryHandler.HandleSaveDay, protected)
	huma.Delete(api, "/admin/packages/{id}/days/{dayId}", itineraryHandler.HandleDeleteDay, noContent)
}
