package parser_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/abcp-harvester/internal/parser"
	"github.com/MichalMitros/abcp-harvester/internal/parser/mocks"
	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/MichalMitros/abcp-harvester/internal/platform/models/modelstesting"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	loc = func() *time.Location {
		loc, err := time.LoadLocation("Etc/UTC")
		if err != nil {
			panic(err)
		}
		return loc
	}()
	now       = time.Date(2022, time.April, 1, 1, 1, 1, 0, loc)
	runID     = uuid.New()
	countries = []string{faker.Word()}
	suppliers = []models.Supplier{ // will affect tests results when changed
		modelstesting.FakeSupplier(func(s *models.Supplier) { s.ID = 1 }),
		modelstesting.FakeSupplier(func(s *models.Supplier) {
			s.ID = 2
			s.Contacts = models.EmptyContactInfo()
		}),
		modelstesting.FakeSupplier(func(s *models.Supplier) {
			s.ID = 3
			s.Contacts.Emails = []string{faker.Email()}
		}),
	}
	harvest = &models.Harvest{
		Suppliers: suppliers,
		Countries: []models.CountryStats{
			{Name: countries[0], URL: faker.URL(), Suppliers: len(suppliers)},
			{Name: faker.Word(), URL: faker.URL(), Err: assert.AnError.Error()},
		},
	}
	emptyHarvest = &models.Harvest{
		Suppliers: []models.Supplier{},
		Countries: []models.CountryStats{},
	}
	nopLogger                      = zerolog.Nop()
	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

func TestUnitParse(t *testing.T) {
	wantRun := &models.Run{
		ID:                    runID,
		StartedAt:             now,
		FinishedAt:            &now,
		IsSuccess:             lo.ToPtr(true),
		Countries:             lo.ToPtr(int32(2)),
		FailedCountries:       lo.ToPtr(int32(1)),
		Suppliers:             lo.ToPtr(int32(3)),
		SuppliersWithContacts: lo.ToPtr(int32(suppliersWithContacts())),
	}

	harvester := mocks.NewHarvester(t)
	exporters := []*mocks.Exporter{mocks.NewExporter(t), mocks.NewExporter(t)}
	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	mockStorageStartRun(storage, nil)
	mockHarvester(harvester, harvest, nil)
	for _, exporter := range exporters {
		mockExporter(exporter, harvest, nil)
	}
	storage.On("SaveSuppliers", mock.Anything, runID, suppliers).Return(nil).Once()
	publisher.On("PublishSuppliers", mock.Anything, suppliers).Return(nil).Once()
	mockStorageFinishRun(storage, wantRun, nil)

	par := newParser(harvester, exporters,
		parser.WithStorage(storage),
		parser.WithPublisher(publisher),
	)

	run, err := par.Parse(context.TODO(), countries)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, wantRun, run, "should return finished run")
}

func TestUnitParseWithoutStorage(t *testing.T) {
	harvester := mocks.NewHarvester(t)
	exporter := mocks.NewExporter(t)

	mockHarvester(harvester, harvest, nil)
	mockExporter(exporter, harvest, nil)

	run, err := newParser(harvester, []*mocks.Exporter{exporter}).Parse(context.TODO(), countries)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, runID, run.ID, "should return run with generated id")
	assert.Equal(t, lo.ToPtr(true), run.IsSuccess, "should return successful run")
	assert.Equal(t, lo.ToPtr(int32(3)), run.Suppliers, "should count suppliers")
}

func TestUnitParseHarvestError(t *testing.T) {
	tests := map[string]struct {
		harvest *models.Harvest
	}{
		"empty harvest": {harvest: emptyHarvest},
		"nil harvest":   {harvest: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			wantRun := &models.Run{
				ID:                    runID,
				StartedAt:             now,
				FinishedAt:            &now,
				IsSuccess:             lo.ToPtr(false),
				StatusMessage:         lo.ToPtr("can't harvest suppliers: assert.AnError general error for testing"),
				Countries:             lo.ToPtr(int32(0)),
				FailedCountries:       lo.ToPtr(int32(0)),
				Suppliers:             lo.ToPtr(int32(0)),
				SuppliersWithContacts: lo.ToPtr(int32(0)),
			}

			harvester := mocks.NewHarvester(t)
			exporter := mocks.NewExporter(t)
			storage := mocks.NewStorage(t)

			mockStorageStartRun(storage, nil)
			mockHarvester(harvester, tt.harvest, assert.AnError)
			// files are written even when harvesting failed
			mockExporter(exporter, emptyHarvest, nil)
			storage.On("SaveSuppliers", mock.Anything, runID, []models.Supplier{}).Return(nil).Once()
			mockStorageFinishRun(storage, wantRun, nil)

			par := newParser(harvester, []*mocks.Exporter{exporter}, parser.WithStorage(storage))

			run, err := par.Parse(context.TODO(), countries)

			require.ErrorContains(t, err, "can't harvest suppliers", "should return error about failed harvesting")
			require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
			assert.Equal(t, wantRun, run, "should return failed run")
		})
	}
}

func TestUnitParseSinkError(t *testing.T) {
	tests := map[string]struct {
		exporterErr  error
		storageErr   error
		publisherErr error
		wantErr      string
	}{
		"exporter error": {
			exporterErr: assert.AnError,
			wantErr:     "can't export suppliers: assert.AnError general error for testing",
		},
		"storage error": {
			storageErr: assert.AnError,
			wantErr:    "can't store suppliers: assert.AnError general error for testing",
		},
		"publisher error": {
			publisherErr: assert.AnError,
			wantErr:      "can't publish suppliers: assert.AnError general error for testing",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			wantRun := &models.Run{
				ID:                    runID,
				StartedAt:             now,
				FinishedAt:            &now,
				IsSuccess:             lo.ToPtr(false),
				StatusMessage:         lo.ToPtr(tt.wantErr),
				Countries:             lo.ToPtr(int32(2)),
				FailedCountries:       lo.ToPtr(int32(1)),
				Suppliers:             lo.ToPtr(int32(3)),
				SuppliersWithContacts: lo.ToPtr(int32(suppliersWithContacts())),
			}

			harvester := mocks.NewHarvester(t)
			exporter := mocks.NewExporter(t)
			storage := mocks.NewStorage(t)
			publisher := mocks.NewPublisher(t)

			mockStorageStartRun(storage, nil)
			mockHarvester(harvester, harvest, nil)
			mockExporter(exporter, harvest, tt.exporterErr)
			storage.On("SaveSuppliers", mock.Anything, runID, suppliers).Return(tt.storageErr).Once()
			publisher.On("PublishSuppliers", mock.Anything, suppliers).Return(tt.publisherErr).Once()
			mockStorageFinishRun(storage, wantRun, nil)

			par := newParser(harvester, []*mocks.Exporter{exporter},
				parser.WithStorage(storage),
				parser.WithPublisher(publisher),
			)

			_, err := par.Parse(context.TODO(), countries)

			require.EqualError(t, err, tt.wantErr, "should return sink error")
			require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
		})
	}
}

func TestUnitParseStorageError(t *testing.T) {
	t.Run("start run error", func(t *testing.T) {
		harvester := mocks.NewHarvester(t)
		storage := mocks.NewStorage(t)

		mockStorageStartRun(storage, assert.AnError)

		_, err := newParser(harvester, nil, parser.WithStorage(storage)).Parse(context.TODO(), countries)

		require.ErrorContains(t, err,
			"can't start harvesting",
			"should return error about failed harvesting start",
		)
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})

	t.Run("finish run error", func(t *testing.T) {
		wantRun := &models.Run{
			ID:                    runID,
			StartedAt:             now,
			FinishedAt:            &now,
			IsSuccess:             lo.ToPtr(true),
			Countries:             lo.ToPtr(int32(2)),
			FailedCountries:       lo.ToPtr(int32(1)),
			Suppliers:             lo.ToPtr(int32(3)),
			SuppliersWithContacts: lo.ToPtr(int32(suppliersWithContacts())),
		}

		harvester := mocks.NewHarvester(t)
		storage := mocks.NewStorage(t)

		mockStorageStartRun(storage, nil)
		mockHarvester(harvester, harvest, nil)
		storage.On("SaveSuppliers", mock.Anything, runID, suppliers).Return(nil).Once()
		mockStorageFinishRun(storage, wantRun, assert.AnError)

		_, err := newParser(harvester, nil, parser.WithStorage(storage)).Parse(context.TODO(), countries)

		require.ErrorContains(t, err, "can't finish harvesting", "should return error about failed run finishing")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})

	t.Run("finish failed run error", func(t *testing.T) {
		wantRun := &models.Run{
			ID:                    runID,
			StartedAt:             now,
			FinishedAt:            &now,
			IsSuccess:             lo.ToPtr(false),
			StatusMessage:         lo.ToPtr("can't harvest suppliers: assert.AnError general error for testing"),
			Countries:             lo.ToPtr(int32(0)),
			FailedCountries:       lo.ToPtr(int32(0)),
			Suppliers:             lo.ToPtr(int32(0)),
			SuppliersWithContacts: lo.ToPtr(int32(0)),
		}

		harvester := mocks.NewHarvester(t)
		storage := mocks.NewStorage(t)

		mockStorageStartRun(storage, nil)
		mockHarvester(harvester, emptyHarvest, assert.AnError)
		storage.On("SaveSuppliers", mock.Anything, runID, []models.Supplier{}).Return(nil).Once()
		mockStorageFinishRun(storage, wantRun, assert.AnError)

		_, err := newParser(harvester, nil, parser.WithStorage(storage)).Parse(context.TODO(), countries)

		require.ErrorContains(t, err, "can't finish failed harvesting", "should return error about failed run finishing")
		require.ErrorContains(t, err, "can't harvest suppliers", "should return error about failed harvesting")
	})
}

func newParser(harvester parser.Harvester, exporters []*mocks.Exporter, ops ...parser.Option) *parser.Parser {
	ops = append(ops,
		parser.WithClock(fakeClock{now: &now}),
		parser.WithIDGenerator(func() uuid.UUID { return runID }),
	)

	return parser.NewParser(
		harvester,
		lo.Map(exporters, func(e *mocks.Exporter, _ int) parser.Exporter { return e }),
		&nopLogger,
		ops...,
	)
}

func suppliersWithContacts() int {
	return lo.CountBy(suppliers, func(s models.Supplier) bool {
		return len(s.Contacts.Phones) > 0 || len(s.Contacts.Emails) > 0
	})
}

func mockStorageStartRun(storage *mocks.Storage, err error) {
	storage.On("StartRun", mock.Anything, &models.Run{ID: runID, StartedAt: now}).Return(err).Once()
}

func mockStorageFinishRun(storage *mocks.Storage, run *models.Run, err error) {
	storage.On("FinishRun", mock.Anything, run).Return(err).Once()
}

func mockHarvester(harvester *mocks.Harvester, harvest *models.Harvest, err error) {
	harvester.On("Harvest", mock.Anything, countries[0]).Return(harvest, err).Once()
}

func mockExporter(exporter *mocks.Exporter, harvest *models.Harvest, err error) {
	exporter.On("Export", mock.Anything, harvest).Return(err).Once()
}

type fakeClock struct {
	now *time.Time
}

func (c fakeClock) Now() *time.Time {
	return c.now
}
