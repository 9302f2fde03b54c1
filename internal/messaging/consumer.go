package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
)

// notifiedYear is the model year that triggers a stored notification when a
// motorcycle creation event arrives.
const notifiedYear = 2024

// MotorcycleCreatedConsumer listens for motorcycle creation events and
// records a notification for motorcycles of the watched model year.
type MotorcycleCreatedConsumer struct {
	conn          *amqp.Connection
	channel       *amqp.Channel
	queue         string
	notifications repository.NotificationRepository
}

func NewMotorcycleCreatedConsumer(url, exchange, queue string, notifications repository.NotificationRepository) (*MotorcycleCreatedConsumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	routingKey := domain.MotorcycleCreatedEvent{}.RoutingKey()
	if err := channel.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &MotorcycleCreatedConsumer{
		conn:          conn,
		channel:       channel,
		queue:         q.Name,
		notifications: notifications,
	}, nil
}

// Start consumes messages until the context is cancelled.
func (c *MotorcycleCreatedConsumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	logger.Info("Motorcycle event consumer started", "queue", c.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if err := c.handle(ctx, delivery.Body); err != nil {
				logger.Error("Failed to handle motorcycle event", "error", err)
				delivery.Nack(false, false)
				continue
			}
			delivery.Ack(false)
		}
	}
}

func (c *MotorcycleCreatedConsumer) handle(ctx context.Context, body []byte) error {
	var event domain.MotorcycleCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Year != notifiedYear {
		logger.Debug("Ignoring motorcycle event", "motorcycleID", event.MotorcycleID, "year", event.Year)
		return nil
	}

	note := &domain.MotorcycleNotification{
		ID:           uuid.New(),
		MotorcycleID: event.MotorcycleID,
		LicensePlate: event.LicensePlate,
		Year:         event.Year,
		Model:        event.Model,
		CreatedAt:    time.Now().UTC(),
	}
	if err := c.notifications.Create(ctx, note); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	logger.Info("Recorded motorcycle notification", "motorcycleID", event.MotorcycleID, "year", event.Year)
	return nil
}

func (c *MotorcycleCreatedConsumer) Close() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.conn.Close()
}
