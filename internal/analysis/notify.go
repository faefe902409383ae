package analysis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Notifier publishes advisory session-status events around analysis
// runs. Polling the report endpoint stays the external contract; these
// events are a hook for future push-based delivery.
type Notifier interface {
	Publish(sessionID, status, message string) error
}

// NoopNotifier discards all updates.
type NoopNotifier struct{}

func (NoopNotifier) Publish(string, string, string) error { return nil }

// AMQPNotifier publishes status updates to a topic exchange, one
// routing key per session.
type AMQPNotifier struct {
	conn *amqp.Connection
}

func NewAMQPNotifier(conn *amqp.Connection) *AMQPNotifier {
	return &AMQPNotifier{conn: conn}
}

func (n *AMQPNotifier) Publish(sessionID, status, message string) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(map[string]any{
		"session_id": sessionID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	})
	routingKey := fmt.Sprintf("session.%s", sessionID)

	return ch.Publish(
		"session_updates", // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
