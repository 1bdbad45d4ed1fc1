package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// FollowUpPayload describes a callback promise made on a call: the
// customer asked to be called again, so the telecaller gets a reminder.
type FollowUpPayload struct {
	LeadID          string    `json:"lead_id"`
	LeadName        string    `json:"lead_name"`
	Phone           string    `json:"phone"`
	ResponseStatus  string    `json:"response_status"`
	TelecallerID    string    `json:"telecaller_id"`
	TelecallerName  string    `json:"telecaller_name"`
	TelecallerEmail string    `json:"telecaller_email"`
	RequestedAt     time.Time `json:"requested_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishFollowUp(ctx context.Context, payload FollowUpPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed encoding payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed publishing follow-up: %w", err)
	}

	return nil
}
