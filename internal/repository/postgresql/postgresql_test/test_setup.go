package postgresqltest

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
)

const schemaPath = "../../../../migrations/001_init.sql"

// TestDatabaseSetup holds the connection used by repository integration tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema.
func NewTestDatabase(ctx context.Context, dsn string) (*TestDatabaseSetup, error) {
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	if _, err := db.Exec(ctx, string(schema)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables removes all rows the tests may have written.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"attendances", "employees"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
