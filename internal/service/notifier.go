// Package service contains the booking notification publisher. Publishing is
// best-effort: errors are logged and returned so callers can ignore them
// without interrupting the request flow.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/elantiq/hostel-booking-api/internal/queue"
)

// Notifier publishes booking events to RabbitMQ. An empty URL disables
// dispatch entirely, matching a deployment without a configured broker.
type Notifier struct {
	URL   string
	Queue string
	Log   *zap.Logger
}

func NewNotifier(url, queueName string, log *zap.Logger) *Notifier {
	return &Notifier{URL: url, Queue: queueName, Log: log}
}

// Dispatch launches the publish on its own goroutine and returns at once.
// The caller's response is already committed by the time this runs; a failed
// publish is logged inside Publish and affects nothing else. There is no
// retry and no cancellation: once launched the attempt runs to completion
// or fails silently.
func (n *Notifier) Dispatch(event queue.BookingCreatedEvent) {
	if n.URL == "" {
		n.Log.Warn("AMQP_URL not configured, skipping booking notification",
			zap.String("booking_id", event.BookingID))
		return
	}
	go func() {
		_ = n.Publish(context.Background(), event)
	}()
}

// Publish sends one event to the durable queue, declaring it first so the
// publisher works against a fresh broker. Messages are marked persistent.
func (n *Notifier) Publish(ctx context.Context, event queue.BookingCreatedEvent) error {
	conn, err := amqp.Dial(n.URL)
	if err != nil {
		n.Log.Error("notifier: dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		n.Log.Error("notifier: channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		n.Queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		n.Log.Error("notifier: queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		n.Log.Error("notifier: marshal event failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", n.Queue, false, false, pub); err != nil {
		n.Log.Error("notifier: publish failed", zap.Error(err))
		return err
	}

	n.Log.Info("booking notification published",
		zap.String("booking_id", event.BookingID),
		zap.String("queue", n.Queue))
	return nil
}
