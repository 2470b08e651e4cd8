package integration

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briggittemora/Gestion-de-tareas/internal/models"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestRabbitMQClient_PublishSubmissionCreated(t *testing.T) {
	ch := &fakeChannel{}
	client := &rabbitMQClient{
		channel:    ch,
		exchange:   "tareas_exchange",
		routingKey: "entrega.creada",
		logger:     zerolog.Nop(),
		now:        func() time.Time { return time.Unix(1700000000, 0) },
	}

	file := "entrega-1-2.pdf"
	err := client.PublishSubmissionCreated(context.Background(), &models.Assignment{
		ID: 10, TareaID: 3, UsuarioID: 7, ArchivoEntregado: &file,
	})
	require.NoError(t, err)

	assert.Equal(t, "tareas_exchange", ch.exchange)
	assert.Equal(t, "entrega.creada", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, ch.msg.DeliveryMode)

	var event models.SubmissionCreatedEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &event))
	assert.Equal(t, int64(10), event.AsignacionID)
	assert.Equal(t, int64(3), event.TareaID)
	assert.Equal(t, int64(7), event.UsuarioID)
	assert.Equal(t, file, event.ArchivoEntregado)
	assert.Equal(t, int64(1700000000), event.Timestamp)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, event.EventID, ch.msg.MessageId)

	require.NoError(t, client.Close())
	assert.True(t, ch.closed)
}

func TestRabbitMQClient_PublishError(t *testing.T) {
	client := &rabbitMQClient{
		channel: &fakeChannel{err: errors.New("channel closed")},
		logger:  zerolog.Nop(),
		now:     time.Now,
	}

	err := client.PublishSubmissionCreated(context.Background(), &models.Assignment{ID: 1})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()
	assert.NoError(t, p.PublishSubmissionCreated(context.Background(), &models.Assignment{}))
	assert.NoError(t, p.Close())
}
