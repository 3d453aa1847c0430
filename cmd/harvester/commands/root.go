package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MichalMitros/abcp-harvester/cmd/harvester/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "harvester [countries...]",
	Short: "harvester collects abcp.ru suppliers directory with contacts of every supplier.",
	Long: "harvester collects abcp.ru suppliers directory once and writes it to output files.\n" +
		"Countries to harvest may be passed as arguments, all countries are harvested by default.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}

		if logger, err = newLogger(os.Stderr, cfg.Log); err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd.Context(), countriesToHarvest(args))
	},
}

// ExecuteContext runs root command and exits with non-zero code on failure.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(out io.Writer, cfg config.Log) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("can't parse log level: %w", err)
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &logger, nil
}

// countriesToHarvest returns countries from arguments, falling back to configured ones.
func countriesToHarvest(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Countries
}
