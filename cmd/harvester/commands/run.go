package commands

import (
	"context"
	"fmt"
)

func runOnce(ctx context.Context, countries []string) error {
	application, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer application.close()

	if application.rmq != nil {
		if err := application.rmq.DeclareExchange(); err != nil {
			return fmt.Errorf("can't prepare suppliers exchange: %w", err)
		}
	}

	run, err := application.parser.Parse(ctx, countries)
	if err != nil {
		return fmt.Errorf("harvesting %s failed: %w", run.ID, err)
	}

	logger.Info().
		Str("run", run.ID.String()).
		Str("csv", cfg.Output.CSVFilename).
		Str("json", cfg.Output.JSONFilename).
		Msg("suppliers saved")

	return nil
}
