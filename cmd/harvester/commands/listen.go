package commands

import (
	"errors"
	"fmt"

	"github.com/MichalMitros/abcp-harvester/internal/handler"
	"github.com/spf13/cobra"
)

var errNoRabbitMQ = errors.New("RABBITMQ_URL is not set")

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Consumes harvest commands from RabbitMQ and runs harvesting for each of them.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.RabbitMQ.URL == "" {
			return errNoRabbitMQ
		}

		application, err := newApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer application.close()

		err = application.rmq.DeclareQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.CommandsRoutingKey)
		if err != nil {
			return fmt.Errorf("can't prepare commands queue: %w", err)
		}

		han := handler.NewHandler(application.rmq, application.parser, logger)

		// start consuming and handling messages
		if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
			return fmt.Errorf("can't start consuming: %w", err)
		}

		logger.Info().Msg("abcp harvester up and running")

		<-ctx.Done()

		logger.Info().Msg("graceful shutdown start")

		// wait for consumer to finish
		<-application.rmq.Done()

		logger.Info().Msg("graceful shutdown successful")

		return nil
	},
}
