package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/elantiq/hostel-booking-api/internal/config"
	"github.com/elantiq/hostel-booking-api/internal/database"
	"github.com/elantiq/hostel-booking-api/internal/handler"
	"github.com/elantiq/hostel-booking-api/internal/middleware"
	"github.com/elantiq/hostel-booking-api/internal/repository"
	"github.com/elantiq/hostel-booking-api/internal/router"
	"github.com/elantiq/hostel-booking-api/internal/service"
	"github.com/elantiq/hostel-booking-api/internal/utils"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.InsecureSecret() {
		logger.Warn("JWT_SECRET is unset, using the built-in default; do not deploy like this")
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		logger.Fatal("ensure schema", zap.Error(err))
	}
	cancel()

	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	contacts := repository.NewContactRepo(db)
	admins := repository.NewAdminRepo(db)

	tokens := utils.TokenService{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL}
	notifier := service.NewNotifier(cfg.AMQPURL, cfg.NotifyQueue, logger)

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable, rate limiting disabled")
	}
	rateLimit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	router.Register(e, router.Handlers{
		Rooms:    handler.NewRoomHandler(rooms),
		Bookings: handler.NewBookingHandler(bookings, rooms, notifier),
		Contacts: handler.NewContactHandler(contacts),
		Auth:     handler.NewAuthHandler(admins, tokens, cfg.BcryptCost),
		Stats:    handler.NewStatsHandler(rooms, bookings, contacts),
		Seed:     handler.NewSeedHandler(rooms, admins, cfg.BcryptCost, logger),
	}, tokens, admins, rateLimit)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
