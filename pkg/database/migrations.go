package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in schema code. The runs index is what guarantees at
// most one waiting run per test: concurrent planners lose the race at the
// database instead of double-booking a test.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS run_id_test_waiting
		ON runs (id_test)
		WHERE state = 'waiting'`)
	if err != nil {
		return fmt.Errorf("failed to create waiting run index: %w", err)
	}

	return nil
}
