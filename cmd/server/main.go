package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/tour-api/internal/app"
	"github.com/gdg-garage/tour-api/internal/auth"
	"github.com/gdg-garage/tour-api/internal/booking"
	"github.com/gdg-garage/tour-api/internal/config"
	"github.com/gdg-garage/tour-api/internal/database"
	"github.com/gdg-garage/tour-api/internal/handlers"
	"github.com/gdg-garage/tour-api/internal/notifier"
	"github.com/gdg-garage/tour-api/internal/payment"
	"github.com/gdg-garage/tour-api/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

func openStore(ctx context.Context, cfg *config.Config) storage.Store {
	switch cfg.StoreBackend {
	case "memory":
		return storage.NewMemoryStore()
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		return storage.NewRedisStore(client, cfg.RedisKeyPrefix)
	case "sqlite":
		return storage.NewGormStore(database.Connect(cfg))
	default:
		log.Fatalf("Unknown store backend %q", cfg.StoreBackend)
		return nil
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load Configuration
	cfg := config.LoadConfig()

	// Open Store
	store := storage.WithLatency(openStore(ctx, cfg), cfg.SimulatedLatency)

	tour := app.New(store, app.Options{
		Prices: booking.Prices{Adult: cfg.PricePerAdult, Child: cfg.PricePerChild},
	})
	if err := tour.Load(ctx); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	var bookingNotifier notifier.Notifier
	if discordNotifier, err := notifier.NewDiscordNotifierFromToken(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID); err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		bookingNotifier = discordNotifier
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg)
	bookingHandler := handlers.NewBookingHandler(tour, payment.Merchant{
		UPIID:      cfg.UPIID,
		Name:       cfg.MerchantName,
		QREndpoint: cfg.QREndpoint,
	}, bookingNotifier, authHandler)
	itineraryHandler := handlers.NewItineraryHandler(tour, payment.Calendar{
		Title:    cfg.CalendarTitle,
		Details:  cfg.CalendarDetails,
		Location: cfg.CalendarLocation,
	}, authHandler)

	// Initialize Router
	r := chi.NewRouter()
	handlers.RegisterRoutes(r, cfg, authHandler, bookingHandler, itineraryHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
