package commander

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyRoutingKey is returned when commands routing key isn't configured.
var ErrEmptyRoutingKey = errors.New("empty commands routing key")

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(ctx context.Context, routingKey string, message []byte) error
}

// RabbitMQSender sends commands as RMQ messages to commands routing key.
type RabbitMQSender struct {
	publisher  RabbitMQPublisher
	routingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing commands to routingKey.
func NewRabbitMQSender(publisher RabbitMQPublisher, routingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:  publisher,
		routingKey: routingKey,
	}
}

// Send publishes command message.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	if s.routingKey == "" {
		return ErrEmptyRoutingKey
	}

	if err := s.publisher.Publish(ctx, s.routingKey, msg); err != nil {
		return fmt.Errorf("can't publish command to %s: %w", s.routingKey, err)
	}

	return nil
}
