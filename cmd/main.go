package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/twilio/twilio-go"

	"github.com/sbilibin2017/nailstudio-booking/internal/config"
	"github.com/sbilibin2017/nailstudio-booking/internal/facades"
	"github.com/sbilibin2017/nailstudio-booking/internal/handlers"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/middlewares"
	"github.com/sbilibin2017/nailstudio-booking/internal/migrations"
	"github.com/sbilibin2017/nailstudio-booking/internal/pricing"
	"github.com/sbilibin2017/nailstudio-booking/internal/repositories"
	"github.com/sbilibin2017/nailstudio-booking/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title nailstudio-booking API
// @version 1.0.0
// @description Booking and registration backend for a nail studio
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service. Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// routes groups the endpoint handlers mounted by newRouter.
type routes struct {
	bookings       http.HandlerFunc
	register       http.HandlerFunc
	services       http.HandlerFunc
	availableHours http.HandlerFunc
	swaggerURL     string
}

// newRouter mounts the handlers behind recovery and request logging.
// /bookings and /register accept every method and answer 405 themselves.
func newRouter(rt routes) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	r.HandleFunc("/bookings", rt.bookings)
	r.HandleFunc("/register", rt.register)
	r.Get("/services", rt.services)
	r.Get("/available-hours", rt.availableHours)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(rt.swaggerURL)))
	return r
}

// run initializes the logger, database, Redis, Kafka, Twilio and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if cfg.Postgres.Migrate {
		if err := migrations.Apply(ctx, db); err != nil {
			return err
		}
		logger.Log.Info("Database schema is up to date")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka publishing is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, events are not published")
	}

	// SMS confirmations are optional
	var notifier services.BookingNotifier
	if cfg.Twilio.AccountSID != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.Twilio.AccountSID,
			Password: cfg.Twilio.AuthToken,
		})
		notifier = facades.NewBookingSMSFacade(client.Api, cfg.Twilio.FromNumber, cfg.Twilio.DefaultCountryCode)
		logger.Log.Info("Twilio SMS confirmations enabled")
	} else {
		logger.Log.Info("TWILIO_ACCOUNT_SID not set, SMS confirmations are disabled")
	}

	// Initialize repositories
	bookingWriteRepo := repositories.NewBookingWriteRepository(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	availabilityCache := repositories.NewAvailabilityCacheRepository(rdb, cfg.App.AvailabilityCache)

	// Initialize services
	bookingService := services.NewBookingService(bookingWriteRepo, kafkaWriter, notifier, now)
	registrationService := services.NewRegistrationService(userReadRepo, userWriteRepo, kafkaWriter, cfg.App.BcryptCost)
	availabilityService := services.NewAvailabilityService(availabilityCache, cfg.App.BookingSlots, now)

	// Setup router
	r := newRouter(routes{
		bookings:       handlers.NewBookingHandler(bookingService),
		register:       handlers.NewRegisterHandler(registrationService),
		services:       handlers.NewServicesHandler(pricing.Catalog),
		availableHours: handlers.NewAvailableHoursHandler(availabilityService),
		swaggerURL:     fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.App.Host, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
