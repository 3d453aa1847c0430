package harvester

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MichalMitros/abcp-harvester/internal/decoder"
	"github.com/MichalMitros/abcp-harvester/internal/fetcher"
	"github.com/MichalMitros/abcp-harvester/internal/platform"
	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWorkers is default number of suppliers processed concurrently within one country.
	DefaultWorkers = 3
	// DefaultRetryAttempts is default number of profile page fetch attempts.
	DefaultRetryAttempts = 5
	// DefaultRetryDelay is default delay between profile page fetch attempts.
	DefaultRetryDelay = 5 * time.Second

	suppliersPath = "/suppliers"
)

// Option is custom configuration of Harvester.
type Option func(h *Harvester)

// Harvester harvests suppliers directory: countries, their supplier listings and supplier profiles.
type Harvester struct {
	pages    fetcher.PageFetcher
	decoder  *decoder.Decoder
	retrier  *fetcher.Retrier
	baseURL  string
	workers  int
	attempts int
	delay    time.Duration
	logger   *zerolog.Logger
}

// New returns new Harvester fetching pages of site under baseURL.
func New(pages fetcher.PageFetcher, baseURL string, logger *zerolog.Logger, ops ...Option) *Harvester {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	baseURL = strings.TrimRight(baseURL, "/")
	h := &Harvester{
		pages:    pages,
		decoder:  decoder.NewDecoder(baseURL),
		baseURL:  baseURL,
		workers:  DefaultWorkers,
		attempts: DefaultRetryAttempts,
		delay:    DefaultRetryDelay,
		logger:   logger,
	}

	for _, op := range ops {
		op(h)
	}

	h.retrier = fetcher.NewRetrier(pages, h.attempts, h.delay, logger)

	return h
}

// Harvest harvests suppliers of all countries, or only of countries with provided names (case-insensitive).
// Countries are processed one after another; failed countries are logged and skipped.
// Suppliers get IDs 1..N in order of the returned list.
func (h *Harvester) Harvest(ctx context.Context, countries ...string) (*models.Harvest, error) {
	harvest := &models.Harvest{
		Suppliers: []models.Supplier{},
		Countries: []models.CountryStats{},
	}
	// interrupted harvest is exported too
	defer func() {
		models.AssignIDs(harvest.Suppliers)
	}()

	links, err := h.Countries(ctx)
	if err != nil {
		return harvest, fmt.Errorf("can't discover countries: %w", err)
	}

	links = filterCountries(links, countries)
	if len(links) == 0 {
		h.logger.Warn().Strs("countries", countries).Msg("no country matches requested names")
	}

	for _, country := range links {
		if err := ctx.Err(); err != nil {
			return harvest, fmt.Errorf("harvesting interrupted: %w", err)
		}

		h.logger.Info().Str("country", country.Name).Str("url", country.URL).Msg("harvesting country")

		suppliers, err := h.HarvestCountry(ctx, country)
		stats := models.CountryStats{
			Name:      country.Name,
			URL:       country.URL,
			Suppliers: len(suppliers),
		}

		if err != nil {
			h.logger.Error().Err(err).Str("country", country.Name).Msg("can't harvest country")
			stats.Err = err.Error()
		} else {
			h.logger.Info().
				Str("country", country.Name).
				Int("suppliers", len(suppliers)).
				Msg("country harvested")
		}

		harvest.Suppliers = append(harvest.Suppliers, suppliers...)
		harvest.Countries = append(harvest.Countries, stats)
	}

	return harvest, nil
}

// Countries returns countries listed on suppliers index page.
// It returns platform.ErrNoCountries when index page doesn't list any country.
func (h *Harvester) Countries(ctx context.Context) ([]models.CountryLink, error) {
	res := h.pages.Fetch(ctx, h.baseURL+suppliersPath)
	if !res.OK() {
		return nil, fmt.Errorf("can't fetch suppliers index: %w", res.Reason())
	}

	countries := h.decoder.Countries(res.Document)
	if len(countries) == 0 {
		return nil, platform.ErrNoCountries
	}

	return countries, nil
}

// HarvestCountry harvests suppliers listed on country page.
// Listing page is fetched once, without retries. Rows are parsed by a bounded pool of workers,
// so returned suppliers are in completion order. Rows which can't be parsed are skipped.
func (h *Harvester) HarvestCountry(ctx context.Context, country models.CountryLink) ([]models.Supplier, error) {
	res := h.pages.Fetch(ctx, country.URL)
	if !res.OK() {
		return nil, fmt.Errorf("can't fetch suppliers listing: %w", res.Reason())
	}

	rows := h.decoder.SupplierRows(res.Document)
	results := make(chan *models.Supplier)
	suppliers := make([]models.Supplier, 0, rows.Length())

	var collector errgroup.Group
	collector.Go(func() error {
		for supplier := range results {
			if supplier != nil {
				suppliers = append(suppliers, *supplier)
			}
		}
		return nil
	})

	var workers errgroup.Group
	workers.SetLimit(max(h.workers, 1))

	rows.Each(func(_ int, row *goquery.Selection) {
		workers.Go(func() error {
			results <- h.parseSupplier(ctx, row, country.Name)
			return nil
		})
	})

	_ = workers.Wait()
	close(results)
	_ = collector.Wait()

	if err := ctx.Err(); err != nil {
		return suppliers, fmt.Errorf("harvesting interrupted: %w", err)
	}

	return suppliers, nil
}

// parseSupplier decodes listing row and enriches it with contacts from supplier's profile.
// It returns nil when row can't be parsed.
func (h *Harvester) parseSupplier(ctx context.Context, row *goquery.Selection, country string) (supplier *models.Supplier) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Str("country", country).
				Interface("panic", r).
				Msg("can't parse supplier row")
			supplier = nil
		}
	}()

	decoded, err := h.decoder.SupplierRow(row)
	if err != nil {
		h.logger.Warn().Err(err).Str("country", country).Msg("skipping supplier row")
		return nil
	}

	contacts := models.EmptyContactInfo()
	if decoded.ProfileURL == "" {
		h.logger.Warn().
			Str("country", country).
			Str("supplier", decoded.Name).
			Msg("supplier row doesn't contain profile link")
	} else {
		contacts = fetcher.Retry(ctx, h.retrier, decoded.ProfileURL, h.decoder.Contacts, models.EmptyContactInfo())
		if contacts.IsEmpty() {
			h.logger.Debug().
				Str("country", country).
				Str("supplier", decoded.Name).
				Msg("supplier has no contacts")
		}
	}

	return &models.Supplier{
		Country:     country,
		SupplierRow: decoded,
		Contacts:    contacts,
	}
}

func filterCountries(countries []models.CountryLink, names []string) []models.CountryLink {
	if len(names) == 0 {
		return countries
	}

	return lo.Filter(countries, func(country models.CountryLink, _ int) bool {
		return lo.ContainsBy(names, func(name string) bool {
			return strings.EqualFold(strings.TrimSpace(name), country.Name)
		})
	})
}

// WithWorkers sets number of suppliers processed concurrently. Values lower than 1 are treated as 1.
func WithWorkers(workers int) Option {
	return func(h *Harvester) {
		h.workers = max(workers, 1)
	}
}

// WithRetry sets number of profile fetch attempts and delay between them.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(h *Harvester) {
		h.attempts = attempts
		h.delay = delay
	}
}
