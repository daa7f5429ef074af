package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// RetryJob is the wire payload on the email retry queue.
type RetryJob struct {
	OutboundEmailID int `json:"outbound_email_id"`
}

// EmailRetryQueue is the durable queue cmd/worker consumes from.
const EmailRetryQueue = "email_retries"

// AMQPQueue publishes JSON payloads to a durable RabbitMQ queue. Subscribe
// is not implemented; consumption lives in cmd/worker which manages its own
// channel and acks.
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPQueue(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	return &AMQPQueue{conn: conn, ch: ch}, nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	if _, err := q.ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("AMQP consumption is handled by the worker binary")
}

func (q *AMQPQueue) Close() error {
	if err := q.ch.Close(); err != nil {
		return err
	}
	return q.conn.Close()
}

var _ Queue = (*AMQPQueue)(nil)
