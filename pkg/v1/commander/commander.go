package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// HarvestCommand is command starting suppliers harvesting.
type HarvestCommand struct {
	// Countries are names of countries to harvest. All countries are harvested when empty.
	Countries []string `json:"countries,omitempty"`
}

// HarvestCommander sends harvest commands.
type HarvestCommander struct {
	sender Sender
}

// NewHarvestCommander returns new HarvestCommander using provided sender for sending messages.
func NewHarvestCommander(sender Sender) HarvestCommander {
	return HarvestCommander{
		sender: sender,
	}
}

// SendHarvestCommand sends harvest command for provided countries.
func (c HarvestCommander) SendHarvestCommand(ctx context.Context, countries ...string) error {
	cmd := HarvestCommand{
		Countries: countries,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal harvest command: %w", err)
	}

	if err := c.sender.Send(ctx, cmdMsg); err != nil {
		return fmt.Errorf("can't send harvest command: %w", err)
	}

	return nil
}
