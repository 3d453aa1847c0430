package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/MichalMitros/abcp-harvester/internal/platform/rabbitmq"
	"github.com/MichalMitros/abcp-harvester/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Parser --filename parser.go

// Parser harvests suppliers of provided countries.
type Parser interface {
	Parse(ctx context.Context, countries []string) (*models.Run, error)
}

//go:generate mockery --name Consumer --filename consumer.go

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	consumer Consumer
	parser   Parser
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, parser Parser, logger *zerolog.Logger) *RMQHandler {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &RMQHandler{
		consumer: consumer,
		parser:   parser,
		logger:   logger,
	}
}

// Start starts consuming and handling harvest commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle decodes harvest command and runs harvesting.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Strs("countries", cmd.Countries).
		Msg("harvest command received")

	run, err := h.parser.Parse(ctx, cmd.Countries)
	if err != nil {
		return fmt.Errorf("harvesting failed: %w", err)
	}

	h.logger.Debug().
		Str("runId", run.ID.String()).
		Strs("countries", cmd.Countries).
		Msg("harvest command handled")

	return nil
}

func decodeMessage(msg []byte) (*commander.HarvestCommand, error) {
	var cmd commander.HarvestCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode harvest command: %w", err)
	}

	return &cmd, nil
}
