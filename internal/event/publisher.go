// Package event publishes measurement lifecycle events to RabbitMQ.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"iot-fleet-inventory/internal/config"
	"iot-fleet-inventory/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MeasurementStored is emitted after a measurement has been persisted.
type MeasurementStored struct {
	SensorID    uint      `json:"sensor_id"`
	GatewayID   uint      `json:"gateway_id"`
	Measurement float64   `json:"measurement"`
	Unit        string    `json:"unit"`
	StoredAt    time.Time `json:"stored_at"`
}

// Publisher pushes events onto a durable RabbitMQ queue. A nil Publisher is
// valid and drops all events, so event publishing stays optional.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewPublisher connects to RabbitMQ and declares the event queue.
func NewPublisher(cfg *config.AMQPConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		cfg.Queue, // queue name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
		queue:   cfg.Queue,
	}, nil
}

// PublishMeasurementStored publishes a MeasurementStored event.
func (p *Publisher) PublishMeasurementStored(ctx context.Context, event MeasurementStored) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Debug("Measurement event published",
		zap.String("queue", p.queue),
		zap.Uint("sensor_id", event.SensorID),
		zap.Uint("gateway_id", event.GatewayID),
	)

	return nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
