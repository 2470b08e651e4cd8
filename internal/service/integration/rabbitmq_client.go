package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/config"
	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/pkg/rabbitmq"
)

// SubmissionPublisher announces delivered files to other consumers.
type SubmissionPublisher interface {
	PublishSubmissionCreated(ctx context.Context, assignment *models.Assignment) error
	Close() error
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type rabbitMQClient struct {
	conn       *amqp091.Connection
	channel    amqpChannel
	exchange   string
	routingKey string
	logger     zerolog.Logger
	now        func() time.Time
}

func NewRabbitMQClient(cfg config.RabbitMQConfig, logger zerolog.Logger) (SubmissionPublisher, error) {
	conn, err := rabbitmq.NewConnection(cfg.URL)
	if err != nil {
		return nil, err
	}

	channel, err := rabbitmq.NewChannel(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	queue, err := rabbitmq.DeclareRoute(channel, cfg.Exchange, cfg.QueueName, cfg.RoutingKey)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	logger.Info().
		Str("exchange", cfg.Exchange).
		Str("queue", queue).
		Str("routing_key", cfg.RoutingKey).
		Msg("Connected to RabbitMQ")

	return &rabbitMQClient{
		conn:       conn,
		channel:    channel,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (c *rabbitMQClient) PublishSubmissionCreated(ctx context.Context, assignment *models.Assignment) error {
	event := &models.SubmissionCreatedEvent{
		EventID:      uuid.NewString(),
		AsignacionID: assignment.ID,
		TareaID:      assignment.TareaID,
		UsuarioID:    assignment.UsuarioID,
		Timestamp:    c.now().Unix(),
	}
	if assignment.ArchivoEntregado != nil {
		event.ArchivoEntregado = *assignment.ArchivoEntregado
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		c.exchange,   // exchange
		c.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    c.now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info().
		Str("event_id", event.EventID).
		Int64("asignacion_id", event.AsignacionID).
		Msg("Submission created event published")

	return nil
}

func (c *rabbitMQClient) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Failed to close RabbitMQ channel")
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	return nil
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher() SubmissionPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishSubmissionCreated(context.Context, *models.Assignment) error { return nil }

func (noopPublisher) Close() error { return nil }
