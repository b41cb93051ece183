package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
)

// Migrate executes every .sql file in the given filesystem in lexical order.
// Statements are idempotent (IF NOT EXISTS), so running on every startup is
// safe; a dedicated migration tool takes over once the schema grows.
func Migrate(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	entries, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		script, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
