package commands

import (
	"fmt"

	"github.com/MichalMitros/abcp-harvester/internal/platform/rabbitmq"
	"github.com/MichalMitros/abcp-harvester/pkg/v1/commander"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send [countries...]",
	Short: "Sends harvest command to listening harvesters.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RabbitMQ.URL == "" {
			return errNoRabbitMQ
		}

		connection, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			return fmt.Errorf("can't open RabbitMQ connection: %w", err)
		}
		defer closeConnection(connection)

		rmq, err := rabbitmq.NewRabbitMQ(connection, cfg.RabbitMQ.Exchange)
		if err != nil {
			return fmt.Errorf("can't open RabbitMQ channel: %w", err)
		}

		if err := rmq.DeclareQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.CommandsRoutingKey); err != nil {
			return fmt.Errorf("can't prepare commands queue: %w", err)
		}

		cmndr := commander.NewHarvestCommander(commander.NewRabbitMQSender(rmq, cfg.RabbitMQ.CommandsRoutingKey))
		if err := cmndr.SendHarvestCommand(cmd.Context(), countriesToHarvest(args)...); err != nil {
			return err
		}

		logger.Info().
			Strs("countries", countriesToHarvest(args)).
			Msg("harvest command sent")

		return nil
	},
}

func closeConnection(connection *amqp.Connection) {
	if err := connection.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close RabbitMQ connection")
	}
}
