package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/MichalMitros/abcp-harvester/internal/platform/models/modelstesting"
	"github.com/MichalMitros/abcp-harvester/internal/platform/storage"
	pgmodels "github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/abcp-harvester/internal/platform/storage/storagetesting"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

var loc = func() *time.Location {
	loc, err := time.LoadLocation("Etc/UTC")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	s.Require().NoError(storage.NewPostgres(s.DB, 0).Migrate(context.TODO()), "can't migrate database")
	// second migration must be no-op
	s.Require().NoError(storage.NewPostgres(s.DB, 0).Migrate(context.TODO()), "can't migrate database twice")
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationStartRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	startedAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	runID := uuid.New()

	tests := map[string]struct {
		storedRuns []pgmodels.HarvestRun
		wantErr    bool
	}{
		"first run": {},
		"after other run": {
			storedRuns: []pgmodels.HarvestRun{{ID: uuid.New(), StartedAt: startedAt, Success: lo.ToPtr(true)}},
		},
		"duplicated id error": {
			storedRuns: []pgmodels.HarvestRun{{ID: runID, StartedAt: startedAt}},
			wantErr:    true,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			post := storage.NewPostgres(s.DB, 0)

			err := post.StartRun(context.TODO(), &models.Run{ID: runID, StartedAt: startedAt})

			if tt.wantErr {
				s.Require().Error(err, "should return error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			stored := storagetesting.GetRun(s.T(), s.DB, runID)
			s.Equal(runID, stored.ID, "should store run id")
			s.True(startedAt.Equal(stored.StartedAt), "should store run start time")
			s.Nil(stored.FinishedAt, "shouldn't finish run")
			s.Nil(stored.Success, "shouldn't set run status")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationFinishRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	startedAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	finishedAt := time.Date(2024, time.April, 1, 2, 1, 1, 0, loc)
	runID := uuid.New()

	run := models.Run{
		ID:                    runID,
		StartedAt:             startedAt,
		FinishedAt:            &finishedAt,
		IsSuccess:             lo.ToPtr(false),
		StatusMessage:         lo.ToPtr("can't harvest suppliers"),
		Countries:             lo.ToPtr(int32(5)),
		FailedCountries:       lo.ToPtr(int32(1)),
		Suppliers:             lo.ToPtr(int32(120)),
		SuppliersWithContacts: lo.ToPtr(int32(97)),
	}

	tests := map[string]struct {
		storedRuns []pgmodels.HarvestRun
		wantErr    bool
	}{
		"single run": {
			storedRuns: []pgmodels.HarvestRun{{ID: runID, StartedAt: startedAt}},
		},
		"many runs": {
			storedRuns: []pgmodels.HarvestRun{
				{ID: uuid.New(), StartedAt: startedAt},
				{ID: runID, StartedAt: startedAt},
			},
		},
		"not existing run error": {
			storedRuns: []pgmodels.HarvestRun{{ID: uuid.New(), StartedAt: startedAt}},
			wantErr:    true,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			post := storage.NewPostgres(s.DB, 0)

			err := post.FinishRun(context.TODO(), &run)

			if tt.wantErr {
				s.Require().ErrorIs(err, sql.ErrNoRows, "should return error about missing run")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			stored := storagetesting.GetRun(s.T(), s.DB, runID)
			s.Require().NotNil(stored.FinishedAt, "should finish run")
			s.True(finishedAt.Equal(*stored.FinishedAt), "should store run finish time")
			s.Equal(run.IsSuccess, stored.Success, "should store run status")
			s.Equal(run.StatusMessage, stored.StatusMessage, "should store status message")
			s.Equal(run.Countries, stored.Countries, "should store countries number")
			s.Equal(run.FailedCountries, stored.FailedCountries, "should store failed countries number")
			s.Equal(run.Suppliers, stored.Suppliers, "should store suppliers number")
			s.Equal(run.SuppliersWithContacts, stored.SuppliersWithContacts, "should store suppliers with contacts number")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationSaveSuppliers() {
	storagetesting.CleanupData(s.T(), s.DB)
	startedAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	runID := uuid.New()

	suppliers := make([]models.Supplier, 0, 5)
	for ix := 1; ix <= 5; ix++ {
		suppliers = append(suppliers, modelstesting.FakeSupplier(func(sup *models.Supplier) { sup.ID = ix }))
	}
	suppliers[1].Contacts = models.EmptyContactInfo()

	changed := append([]models.Supplier{}, suppliers[:2]...)
	changed[0].Name = "changed"

	tests := map[string]struct {
		runID     uuid.UUID
		saves     [][]models.Supplier
		want      []models.Supplier
		wantErr   bool
		batchSize uint
	}{
		"batched": {
			runID:     runID,
			saves:     [][]models.Supplier{suppliers},
			want:      suppliers,
			batchSize: 2,
		},
		"single batch": {
			runID:     runID,
			saves:     [][]models.Supplier{suppliers},
			want:      suppliers,
			batchSize: 100,
		},
		"saved again": {
			runID:     runID,
			saves:     [][]models.Supplier{suppliers, changed},
			want:      append(append([]models.Supplier{}, changed...), suppliers[2:]...),
			batchSize: 2,
		},
		"nothing to save": {
			runID:     runID,
			saves:     [][]models.Supplier{{}},
			want:      []models.Supplier{},
			batchSize: 2,
		},
		"not existing run error": {
			runID:     uuid.New(),
			saves:     [][]models.Supplier{suppliers},
			wantErr:   true,
			batchSize: 2,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertRuns(s.T(), s.DB, pgmodels.HarvestRun{ID: runID, StartedAt: startedAt})

			post := storage.NewPostgres(s.DB, tt.batchSize)

			var err error
			for _, save := range tt.saves {
				if err = post.SaveSuppliers(context.TODO(), tt.runID, save); err != nil {
					break
				}
			}

			if tt.wantErr {
				s.Require().Error(err, "should return error")
				stored, err := post.Suppliers(context.TODO(), tt.runID)
				s.Require().NoError(err, "can't get suppliers")
				s.Empty(stored, "shouldn't save any supplier")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			stored, err := post.Suppliers(context.TODO(), runID)
			s.Require().NoError(err, "can't get suppliers")
			s.Equal(tt.want, stored, "should store all suppliers")
		})
	}
}
