package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"meetingroom/internal/config"
	"meetingroom/internal/database"
	"meetingroom/internal/domain"
	"meetingroom/internal/middleware"
	"meetingroom/internal/modules/booking"
	"meetingroom/internal/modules/catalog"
	"meetingroom/internal/modules/events"
	"meetingroom/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	rooms, bookings, err := buildStores(cfg)
	if err != nil {
		logger.Error("failed to initialize stores", "error", err)
		os.Exit(1)
	}

	hub := events.NewHub()
	defer hub.Close()

	hours := booking.Hours{Open: cfg.OpeningHour, Close: cfg.ClosingHour}
	validator := booking.NewValidator(hours, domain.RealClock{})

	bookingService := booking.NewService(bookings, rooms, hub,
		validator, hours, time.Duration(cfg.SlotMinutes)*time.Minute)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(rooms)
	catalogHandler := catalog.NewHandler(catalogService)

	eventsHandler := events.NewHandler(hub)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		catalogHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		eventsHandler.RegisterRoutes(api)
	}

	logger.Info("starting server", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// buildStores picks the persistent stores when a DSN is configured, otherwise
// process-memory ones. Both enforce the same admission semantics.
func buildStores(cfg config.Config) (catalog.RoomStore, booking.BookingStore, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("no DATABASE_URL set, using in-memory stores")
		return repository.NewMemoryRoomStore(), repository.NewMemoryBookingStore(domain.RealClock{}), nil
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.AutoMigrate(db); err != nil {
		return nil, nil, err
	}
	return repository.NewRoomRepository(db), repository.NewBookingRepository(db, domain.RealClock{}), nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
