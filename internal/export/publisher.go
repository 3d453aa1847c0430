package export

import (
	"context"
	"fmt"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
)

//go:generate mockery --name MessagePublisher --filename messagepublisher.go

// MessagePublisher publishes messages to routing key.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, message []byte) error
}

// RabbitMQPublisher publishes every supplier as separate message in hierarchical json form.
type RabbitMQPublisher struct {
	publisher  MessagePublisher
	routingKey string
}

// NewRabbitMQPublisher returns new RabbitMQPublisher publishing suppliers to routingKey.
func NewRabbitMQPublisher(publisher MessagePublisher, routingKey string) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		publisher:  publisher,
		routingKey: routingKey,
	}
}

// PublishSuppliers publishes suppliers one by one. It stops at first failure.
func (p *RabbitMQPublisher) PublishSuppliers(ctx context.Context, suppliers []models.Supplier) error {
	for ix := range suppliers {
		msg, err := MarshalSupplier(suppliers[ix])
		if err != nil {
			return fmt.Errorf("can't marshal supplier %d: %w", suppliers[ix].ID, err)
		}

		if err := p.publisher.Publish(ctx, p.routingKey, msg); err != nil {
			return fmt.Errorf("can't publish supplier %d: %w", suppliers[ix].ID, err)
		}
	}

	return nil
}
