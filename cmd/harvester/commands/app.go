package commands

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/MichalMitros/abcp-harvester/cmd/harvester/config"
	"github.com/MichalMitros/abcp-harvester/internal/export"
	"github.com/MichalMitros/abcp-harvester/internal/fetcher"
	"github.com/MichalMitros/abcp-harvester/internal/harvester"
	"github.com/MichalMitros/abcp-harvester/internal/parser"
	"github.com/MichalMitros/abcp-harvester/internal/platform/rabbitmq"
	"github.com/MichalMitros/abcp-harvester/internal/platform/storage"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// app holds parser and connections it uses.
type app struct {
	parser     *parser.Parser
	db         *sql.DB
	connection *amqp.Connection
	rmq        *rabbitmq.RabbitMQ
	logger     *zerolog.Logger
}

// newApp wires parser with exporters, storage and publisher enabled by configuration.
func newApp(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (_ *app, err error) {
	a := &app{logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	client := fetcher.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.Headers(),
		cfg.HTTPRetries,
		cfg.RetryDelay,
		logger,
	)

	hrv := harvester.New(
		fetcher.NewFetcher(client, fetcher.WithRateLimit(cfg.RequestInterval)),
		cfg.BaseURL,
		logger,
		harvester.WithWorkers(cfg.MaxWorkers),
		harvester.WithRetry(cfg.RetryAttempts, cfg.RetryDelay),
	)

	exporters := []parser.Exporter{
		export.NewCSV(cfg.Output.CSVFilename),
		export.NewJSON(cfg.Output.JSONFilename),
	}
	if cfg.Output.XLSXFilename != "" {
		exporters = append(exporters, export.NewXLSX(cfg.Output.XLSXFilename))
	}
	exporters = append(exporters, export.NewSummary(os.Stdout))

	var ops []parser.Option

	if cfg.DatabaseURL != "" {
		if a.db, err = sql.Open("postgres", cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("can't open Postgres connection: %w", err)
		}

		pg := storage.NewPostgres(a.db, cfg.BatchSize)
		if err = pg.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("can't migrate Postgres schema: %w", err)
		}
		ops = append(ops, parser.WithStorage(pg))
	}

	if cfg.RabbitMQ.URL != "" {
		if a.connection, err = amqp.Dial(cfg.RabbitMQ.URL); err != nil {
			return nil, fmt.Errorf("can't open RabbitMQ connection: %w", err)
		}

		if a.rmq, err = rabbitmq.NewRabbitMQ(a.connection, cfg.RabbitMQ.Exchange); err != nil {
			return nil, fmt.Errorf("can't open RabbitMQ channel: %w", err)
		}
		ops = append(ops, parser.WithPublisher(export.NewRabbitMQPublisher(a.rmq, cfg.RabbitMQ.SuppliersRoutingKey)))
	}

	a.parser = parser.NewParser(hrv, exporters, logger, ops...)

	return a, nil
}

// close closes opened connections.
func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}

	if a.connection != nil {
		if err := a.connection.Close(); err != nil {
			a.logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}
}
