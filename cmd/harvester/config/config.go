package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	BaseURL         string            `env:"BASE_URL" envDefault:"https://www.abcp.ru"`
	UserAgent       string            `env:"USER_AGENT" envDefault:"Mozilla/5.0"`
	HTTPHeaders     map[string]string `env:"HTTP_HEADERS" envKeyValSeparator:":" envSeparator:","`
	HTTPTimeout     time.Duration     `env:"HTTP_TIMEOUT" envDefault:"10s"`
	HTTPRetries     int               `env:"HTTP_RETRIES" envDefault:"0"`
	MaxWorkers      int               `env:"MAX_WORKERS" envDefault:"3"`
	RetryAttempts   int               `env:"RETRY_ATTEMPTS" envDefault:"5"`
	RetryDelay      time.Duration     `env:"RETRY_DELAY" envDefault:"5s"`
	RequestInterval time.Duration     `env:"REQUEST_INTERVAL" envDefault:"0s"`
	Countries       []string          `env:"HARVEST_COUNTRIES" envSeparator:","`

	Output Output
	Log    Log

	DatabaseURL string `env:"DATABASE_URL"`
	BatchSize   uint   `env:"BATCH_SIZE" envDefault:"100"`

	RabbitMQ RabbitMQ
}

// Output holds output files configuration.
type Output struct {
	CSVFilename  string `env:"CSV_FILENAME" envDefault:"abcp_suppliers_full.csv"`
	JSONFilename string `env:"JSON_FILENAME" envDefault:"abcp_suppliers_full.json"`
	// XLSXFilename is optional, spreadsheet isn't written when empty.
	XLSXFilename string `env:"XLSX_FILENAME"`
}

// Log holds logger configuration.
type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL                 string `env:"RABBITMQ_URL"`
	Exchange            string `env:"RABBITMQ_EXCHANGE" envDefault:"abcp-ex"`
	Queue               string `env:"RABBITMQ_QUEUE" envDefault:"abcp-harvester.commands"`
	CommandsRoutingKey  string `env:"RABBITMQ_COMMANDS_ROUTING_KEY" envDefault:"abcp.cmd.harvest"`
	SuppliersRoutingKey string `env:"RABBITMQ_SUPPLIERS_ROUTING_KEY" envDefault:"abcp.suppliers"`
}

// Headers returns headers sent with every request.
func (c *Config) Headers() map[string]string {
	headers := make(map[string]string, len(c.HTTPHeaders)+1)
	headers["User-Agent"] = c.UserAgent
	for key, value := range c.HTTPHeaders {
		headers[key] = value
	}
	return headers
}

// Load loads variables from .env file when it exists and parses configuration from environment.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can't load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("can't parse env variables: %w", err)
	}

	return &cfg, nil
}
