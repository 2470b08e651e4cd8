package rabbitmq

import (
	"fmt"

	. "github.com/rabbitmq/amqp091-go"
)

func NewConnection(url string) (*Connection, error) {
	conn, err := Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

func NewChannel(conn *Connection) (*Channel, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return channel, nil
}

// DeclareRoute declares a durable direct exchange and a durable queue bound to it
// with routingKey. It returns the queue name chosen by the broker.
func DeclareRoute(channel *Channel, exchange, queueName, routingKey string) (string, error) {
	err := channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return "", fmt.Errorf("failed to declare exchange: %w", err)
	}

	queue, err := channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return "", fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(queue.Name, routingKey, exchange, false, nil); err != nil {
		return "", fmt.Errorf("failed to bind queue: %w", err)
	}

	return queue.Name, nil
}
