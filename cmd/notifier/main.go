// The notifier worker drains the booking notification queue. It is the
// concrete sink for the fire-and-forget events the API publishes: the server
// never waits for it, and bookings are valid whether or not it runs.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/elantiq/hostel-booking-api/internal/config"
	"github.com/elantiq/hostel-booking-api/internal/queue"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("booking notifier starting", zap.String("queue", cfg.NotifyQueue))
	if err := queue.StartConsumer(cfg.AMQPURL, cfg.NotifyQueue, logger); err != nil {
		logger.Fatal("consumer stopped", zap.Error(err))
	}
}
