package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/config"
	"github.com/villaserena/villa-api/internal/domain/admin"
	"github.com/villaserena/villa-api/internal/domain/availability"
	"github.com/villaserena/villa-api/internal/domain/blockdate"
	"github.com/villaserena/villa-api/internal/domain/booking"
	"github.com/villaserena/villa-api/internal/domain/document"
	"github.com/villaserena/villa-api/internal/domain/gallery"
	"github.com/villaserena/villa-api/internal/domain/inquiry"
	"github.com/villaserena/villa-api/internal/domain/notify"
	"github.com/villaserena/villa-api/internal/middleware"
	"github.com/villaserena/villa-api/internal/pkg/database"
	"github.com/villaserena/villa-api/internal/pkg/imaging"
	pkgresponse "github.com/villaserena/villa-api/internal/pkg/response"
	"github.com/villaserena/villa-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Villa Serena API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	store, err := storage.NewStorage(storage.Config{
		Driver:      cfg.StorageDriver,
		S3Endpoint:  cfg.S3Endpoint,
		S3Region:    cfg.S3Region,
		S3AccessKey: cfg.S3AccessKey,
		S3SecretKey: cfg.S3SecretKey,
		S3Bucket:    cfg.S3Bucket,
		S3PublicURL: cfg.S3PublicURL,
		LocalDir:    cfg.LocalStorageDir,
		LocalURL:    cfg.FrontendURL + "/files",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create storage")
	}

	// ---------- Event hub ----------
	hub := notify.NewHub(redis)
	go hub.Run()
	defer hub.Shutdown()

	// ---------- Repositories ----------
	blockRepo := blockdate.NewRepository(db)
	inquiryRepo := inquiry.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	documentRepo := document.NewRepository(db)
	galleryRepo := gallery.NewRepository(db)

	// ---------- Services ----------
	blockSvc := blockdate.NewService(blockRepo)
	inquirySvc := inquiry.NewService(inquiryRepo, hub)
	bookingSvc := booking.NewService(bookingRepo, inquirySvc, hub)
	documentSvc := document.NewService(documentRepo, store, cfg.MaxUploadBytes)
	gallerySvc := gallery.NewService(galleryRepo, store, imaging.NewProcessor(imaging.DefaultConfig()))

	// Occupancy sources are config-driven: bookings always count,
	// open inquiries only when OCCUPANCY_SOURCES says so.
	var staySources []availability.StaySource
	if cfg.OccupancyIncludes(bookingSvc.Name()) {
		staySources = append(staySources, bookingSvc)
	}
	if cfg.OccupancyIncludes(inquirySvc.Name()) {
		staySources = append(staySources, inquirySvc)
	}
	availabilitySvc := availability.NewService(blockSvc, staySources, cfg.AvailabilityTimeout)

	authorizer := admin.NewAuthorizer(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.AdminSessionTTL)

	// ---------- Handlers ----------
	availabilityHandler := availability.NewHandler(availabilitySvc)
	blockHandler := blockdate.NewHandler(blockSvc)
	inquiryHandler := inquiry.NewHandler(inquirySvc, cfg.WhatsAppPhone)
	bookingHandler := booking.NewHandler(bookingSvc)
	documentHandler := document.NewHandler(documentSvc, cfg.MaxUploadBytes)
	galleryHandler := gallery.NewHandler(gallerySvc, cfg.MaxUploadBytes)
	adminHandler := admin.NewHandler(authorizer)
	notifyHandler := notify.NewHandler(hub, cfg.AllowedOrigins)

	rateLimit := middleware.RateLimit(redis, cfg.RateLimitPerMinute)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))

		r.Mount("/availability", availabilityHandler.Routes())
		r.Mount("/inquiries", inquiryHandler.PublicRoutes(rateLimit))
		r.Mount("/gallery", gallery.PublicRoutes(galleryHandler))
	})

	r.Route("/api/admin", func(r chi.Router) {
		// The WebSocket route stays outside the timeout group: a
		// hijacked connection cannot live under http.TimeoutHandler
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))

			r.Mount("/", admin.Routes(adminHandler, authorizer))
			r.Mount("/blocked-dates", blockHandler.Routes(authorizer.Require))
			r.Mount("/inquiries", inquiryHandler.AdminRoutes(authorizer.Require))
			r.Mount("/bookings", booking.Routes(bookingHandler, authorizer.Require))
			r.Mount("/documents", document.Routes(documentHandler, authorizer.Require))
			r.Mount("/gallery", gallery.AdminRoutes(galleryHandler, authorizer.Require))
		})

		// WebSocket for live panel updates; token comes via query
		// param because browsers cannot set headers on WS upgrades
		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			token := r.URL.Query().Get("token")
			if token != "" {
				r.Header.Set("Authorization", "Bearer "+token)
			}
			authorizer.Require(http.HandlerFunc(notifyHandler.WebSocket)).ServeHTTP(w, r)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
