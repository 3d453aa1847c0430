package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MichalMitros/abcp-harvester/cmd/harvester/commands"
)

func main() {
	// handle graceful shutdown and context cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	commands.ExecuteContext(ctx)
}
