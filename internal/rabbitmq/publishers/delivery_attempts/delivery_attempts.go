package deliveryattempts

import (
	"context"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/reminder"
	"edumentor/internal/rabbitmq"
	"encoding/json"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes every delivery attempt outcome to a durable queue so
// downstream consumers (audit, analytics) can observe the dispatcher.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishAttempt(ctx context.Context, event reminder.AttemptEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Debug(
		ctx,
		"Delivery attempt event has been published.",
		logging.Entry("entryID", event.EntryID),
		logging.Entry("delivered", event.Delivered),
	)
	return nil
}
