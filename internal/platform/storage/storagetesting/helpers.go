package storagetesting

import (
	"context"
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/abcp-harvester/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. Test is skipped when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// CleanupData deletes all runs and suppliers.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	if _, err := table.Supplier.DELETE().WHERE(pg.Bool(true)).Exec(exc); err != nil {
		t.Fatal("can't delete suppliers", err)
	}

	if _, err := table.HarvestRun.DELETE().WHERE(pg.Bool(true)).Exec(exc); err != nil {
		t.Fatal("can't delete runs", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.HarvestRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.HarvestRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.HarvestRun.INSERT(table.HarvestRun.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// GetRun is a helper test function to get stored run.
func GetRun(t *testing.T, db qrm.DB, id uuid.UUID) pgmodels.HarvestRun {
	t.Helper()

	var run pgmodels.HarvestRun
	err := table.HarvestRun.SELECT(table.HarvestRun.AllColumns).
		WHERE(table.HarvestRun.ID.EQ(pg.UUID(id))).
		QueryContext(context.TODO(), db, &run)
	if err != nil {
		t.Fatal("can't get run", err)
	}

	return run
}
