package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/telecrm/internal/logger"
)

// ReminderSender is the delivery channel for follow-up reminders.
// Implemented by the mail package; the worker stays decoupled from SMTP.
type ReminderSender interface {
	SendFollowUpReminder(payload FollowUpPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  ReminderSender
}

func NewWorker(ch *amqp.Channel, sender ReminderSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		logger.Fatal("failed registering RabbitMQ consumer", zap.Error(err))
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload FollowUpPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				logger.Error("discarding malformed follow-up message", zap.Error(err))
				// Malformed message; reject without requeue so it dead-letters.
				d.Nack(false, false)
				continue
			}

			if err := w.Sender.SendFollowUpReminder(payload); err != nil {
				logger.Error("failed sending follow-up reminder",
					zap.String("leadId", payload.LeadID),
					zap.String("telecaller", payload.TelecallerEmail),
					zap.Error(err))
				d.Nack(false, false)
				continue
			}

			logger.Info("follow-up reminder sent",
				zap.String("leadId", payload.LeadID),
				zap.String("telecaller", payload.TelecallerEmail))
			d.Ack(false)
		}
	}()

	logger.Info("follow-up worker waiting on queue", zap.String("queue", queueName))
	<-forever
}
