package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/events"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	var publisher events.Publisher = events.LogPublisher{}
	if cfg.RabbitURL != "" {
		p, err := events.NewAMQPPublisher(cfg.RabbitURL, cfg.BookingExchange)
		if err != nil {
			log.Printf("⚠️  RabbitMQ unavailable, logging booking events instead: %v", err)
		} else {
			publisher = p
			log.Printf("✅ Publishing booking events to exchange %q", cfg.BookingExchange)
		}
	}
	defer publisher.Close()

	mailer := &utils.Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
	}
	sessions := utils.NewSessionManager(cfg.JWTSecret, cfg.SessionTTL)

	// Initialize services
	identityService := services.NewIdentityService(db)
	catalogService := services.NewCatalogService(db)
	searchService := services.NewSearchService(db)
	bookingService := services.NewBookingService(db, publisher, mailer)
	reportService := services.NewReportService(identityService, catalogService, bookingService)

	bootstrap(cfg, identityService, catalogService)

	// Initialize controllers
	router := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(identityService, sessions, cfg.SecureCookies),
		Hotels:   controllers.NewHotelController(catalogService),
		Bookings: controllers.NewBookingController(catalogService, bookingService),
		Search:   controllers.NewSearchController(searchService),
		Admin:    controllers.NewAdminController(reportService, catalogService),
	}, sessions, identityService, cfg.CorsOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

// bootstrap creates the configured admin account and, on request, seeds an
// empty catalog.
func bootstrap(cfg config.Config, identity *services.IdentityService, catalog *services.CatalogService) {
	ctx := context.Background()

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := identity.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("❌ Admin bootstrap failed: %v", err)
		}
	}

	if !cfg.SeedSampleData {
		return
	}
	hotels, _, err := catalog.Counts(ctx)
	if err != nil {
		log.Fatalf("❌ Could not count hotels: %v", err)
	}
	if hotels > 0 {
		log.Println("ℹ️  Catalog already populated; skipping sample data")
		return
	}
	if _, err := catalog.SeedSampleData(ctx); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
