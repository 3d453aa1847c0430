package parser

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Harvester --filename harvester.go
//go:generate mockery --name Exporter --filename exporter.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Publisher --filename publisher.go

// Harvester harvests suppliers directory.
type Harvester interface {
	Harvest(ctx context.Context, countries ...string) (*models.Harvest, error)
}

// Exporter writes harvested suppliers in one of output representations.
type Exporter interface {
	Export(ctx context.Context, harvest *models.Harvest) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is runs and suppliers storage.
type Storage interface {
	// StartRun saves new run.
	StartRun(ctx context.Context, run *models.Run) error
	// SaveSuppliers saves suppliers harvested in run.
	SaveSuppliers(ctx context.Context, runID uuid.UUID, suppliers []models.Supplier) error
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
}

// Publisher publishes harvested suppliers to other services.
type Publisher interface {
	PublishSuppliers(ctx context.Context, suppliers []models.Supplier) error
}

// Option is custom configuration of Parser.
type Option func(p *Parser)

// Parser runs harvesting and hands harvested suppliers over to exporters, storage and publisher.
type Parser struct {
	harvester Harvester
	exporters []Exporter
	storage   Storage
	publisher Publisher
	clock     Clock
	newID     func() uuid.UUID
	logger    *zerolog.Logger
}

// NewParser returns new Parser writing harvested suppliers with provided exporters.
func NewParser(harvester Harvester, exporters []Exporter, logger *zerolog.Logger, ops ...Option) *Parser {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	par := &Parser{
		harvester: harvester,
		exporters: exporters,
		clock:     systemClock{},
		newID:     uuid.New,
		logger:    logger,
	}

	for _, op := range ops {
		op(par)
	}

	return par
}

// Parse harvests suppliers of provided countries (all countries when empty) and saves them.
// Exporters are called even when harvesting failed, so every run produces output.
func (p *Parser) Parse(ctx context.Context, countries []string) (*models.Run, error) {
	run := &models.Run{
		ID:        p.newID(),
		StartedAt: *p.clock.Now(),
	}

	// insert new run in storage.
	if p.storage != nil {
		if err := p.storage.StartRun(ctx, run); err != nil {
			return run, fmt.Errorf("can't start harvesting: %w", err)
		}
	}

	logger := p.logger.With().Str("run", run.ID.String()).Logger()
	logger.Info().Strs("countries", countries).Msg("harvesting started")

	// harvest suppliers.
	harvest, status := p.harvester.Harvest(ctx, countries...)
	if status != nil {
		status = fmt.Errorf("can't harvest suppliers: %w", status)
	}
	if harvest == nil {
		harvest = &models.Harvest{
			Suppliers: []models.Supplier{},
			Countries: []models.CountryStats{},
		}
	}

	run.Countries = lo.ToPtr(int32(len(harvest.Countries)))
	run.FailedCountries = lo.ToPtr(int32(harvest.FailedCountries()))
	run.Suppliers = lo.ToPtr(int32(len(harvest.Suppliers)))
	run.SuppliersWithContacts = lo.ToPtr(int32(harvest.SuppliersWithContacts()))

	// save suppliers.
	if err := p.save(ctx, run.ID, harvest); err != nil {
		if status != nil {
			status = fmt.Errorf("%w (fail reason: %w)", err, status)
		} else {
			status = err
		}
	}

	logger.Info().
		Int32("countries", *run.Countries).
		Int32("failed_countries", *run.FailedCountries).
		Int32("suppliers", *run.Suppliers).
		Int32("suppliers_with_contacts", *run.SuppliersWithContacts).
		Msg("harvesting finished")

	return run, p.finishParsing(ctx, run, status)
}

// save hands harvest over to all configured sinks concurrently. Failure of one sink doesn't stop others.
func (p *Parser) save(ctx context.Context, runID uuid.UUID, harvest *models.Harvest) error {
	var errGroup errgroup.Group

	for _, exporter := range p.exporters {
		exporter := exporter
		errGroup.Go(func() error {
			if err := exporter.Export(ctx, harvest); err != nil {
				return fmt.Errorf("can't export suppliers: %w", err)
			}
			return nil
		})
	}

	if p.storage != nil {
		errGroup.Go(func() error {
			if err := p.storage.SaveSuppliers(ctx, runID, harvest.Suppliers); err != nil {
				return fmt.Errorf("can't store suppliers: %w", err)
			}
			return nil
		})
	}

	if p.publisher != nil {
		errGroup.Go(func() error {
			if err := p.publisher.PublishSuppliers(ctx, harvest.Suppliers); err != nil {
				return fmt.Errorf("can't publish suppliers: %w", err)
			}
			return nil
		})
	}

	return errGroup.Wait()
}

func (p *Parser) finishParsing(ctx context.Context, run *models.Run, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = p.clock.Now()

	if p.storage == nil {
		return status
	}

	err := p.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish harvesting: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed harvesting: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithClock sets Parser's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Parser) {
		p.clock = c
	}
}

// WithStorage makes Parser save runs and suppliers in storage.
func WithStorage(s Storage) Option {
	return func(p *Parser) {
		p.storage = s
	}
}

// WithPublisher makes Parser publish harvested suppliers.
func WithPublisher(pub Publisher) Option {
	return func(p *Parser) {
		p.publisher = pub
	}
}

// WithIDGenerator sets function generating run IDs.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(p *Parser) {
		p.newID = newID
	}
}
