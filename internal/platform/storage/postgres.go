package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/MichalMitros/abcp-harvester/internal/platform/models"
	"github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// DefaultBatchSize is default number of suppliers inserted in single statement.
const DefaultBatchSize = 100

//go:embed schema.sql
var schema string

// Postgres is storage for harvesting runs and harvested suppliers.
type Postgres struct {
	db        *sql.DB
	batchSize int
}

// NewPostgres returns new Postgres inserting suppliers in batches of batchSize.
func NewPostgres(db *sql.DB, batchSize uint) Postgres {
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}

	return Postgres{
		db:        db,
		batchSize: int(batchSize),
	}
}

// Migrate creates tables if they don't exist.
func (p Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("can't create schema: %w", err)
	}

	return nil
}

// StartRun saves new unfinished run.
func (p Postgres) StartRun(ctx context.Context, run *models.Run) error {
	_, err := table.HarvestRun.INSERT(
		table.HarvestRun.ID,
		table.HarvestRun.StartedAt,
	).
		MODEL(toDBRun(run)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert run into database: %w", err)
	}

	return nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.HarvestRun.MutableColumns.Except(table.HarvestRun.StartedAt)

	result, err := table.HarvestRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.HarvestRun.ID.EQ(pg.UUID(run.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run %s: %w", run.ID, lo.Ternary(err != nil, err, sql.ErrNoRows))
	}

	return nil
}

// SaveSuppliers saves suppliers harvested in run in a single transaction.
// Suppliers already saved for the run are overwritten.
func (p Postgres) SaveSuppliers(ctx context.Context, runID uuid.UUID, suppliers []models.Supplier) error {
	if len(suppliers) == 0 {
		return nil
	}

	dbSuppliers := make([]pgmodels.Supplier, 0, len(suppliers))
	for ix := range suppliers {
		dbSuppliers = append(dbSuppliers, ToDBSupplier(runID, &suppliers[ix]))
	}

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		for ix, batch := range lo.Chunk(dbSuppliers, p.batchSize) {
			if err := upsertSuppliers(ctx, tx, batch); err != nil {
				return fmt.Errorf("can't save suppliers batch %d: %w", ix, err)
			}
		}
		return nil
	})
}

// Suppliers returns suppliers saved for run ordered by their IDs.
func (p Postgres) Suppliers(ctx context.Context, runID uuid.UUID) ([]models.Supplier, error) {
	var dbSuppliers []pgmodels.Supplier
	err := table.Supplier.SELECT(table.Supplier.AllColumns).
		WHERE(table.Supplier.RunID.EQ(pg.UUID(runID))).
		ORDER_BY(table.Supplier.SupplierID.ASC()).
		QueryContext(ctx, p.db, &dbSuppliers)
	if err != nil {
		return nil, fmt.Errorf("can't get suppliers: %w", err)
	}

	return lo.Map(dbSuppliers, func(_ pgmodels.Supplier, ix int) models.Supplier {
		return FromDBSupplier(&dbSuppliers[ix])
	}), nil
}

func upsertSuppliers(ctx context.Context, db qrm.DB, suppliers []pgmodels.Supplier) error {
	columnList := table.Supplier.MutableColumns.Except(table.Supplier.CreatedAt)

	excludedExpressions := make([]pg.Expression, 0, len(columnList)) // converting to expression
	for _, col := range table.Supplier.EXCLUDED.MutableColumns.Except(table.Supplier.CreatedAt) {
		excludedExpressions = append(excludedExpressions, col)
	}

	_, err := table.Supplier.INSERT(columnList).
		MODELS(suppliers).
		ON_CONFLICT(table.Supplier.RunID, table.Supplier.SupplierID).
		DO_UPDATE(
			pg.SET(
				columnList.SET(pg.ROW(excludedExpressions...)),
			),
		).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't upsert suppliers into database: %w", err)
	}

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
