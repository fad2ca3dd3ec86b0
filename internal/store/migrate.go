package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/leapstack-labs/itemdb/internal/item"
)

//go:embed migrations/*.sql
var migrations embed.FS

// itemsMigrationVersion creates the items table. It is a Go migration so the
// DDL comes from the item mapping instead of a second hand-written copy.
const itemsMigrationVersion = 1

func createItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, createTableSQL())
	return err
}

func dropItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+item.TableName)
	return err
}

func (s *SQLiteStore) provider() (*goose.Provider, error) {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, s.db, fsys,
		goose.WithGoMigrations(
			goose.NewGoMigration(itemsMigrationVersion,
				&goose.GoFunc{RunTx: createItemsTable},
				&goose.GoFunc{RunTx: dropItemsTable},
			),
		),
	)
}

// Migrate runs all pending database migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if s.db == nil {
		return ErrNotOpened
	}

	p, err := s.provider()
	if err != nil {
		return fmt.Errorf("failed to configure migrations: %w", err)
	}

	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		s.logger.Debug("applied migration",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	return nil
}

// MigrationVersion returns the current migration version.
func (s *SQLiteStore) MigrationVersion(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, ErrNotOpened
	}

	p, err := s.provider()
	if err != nil {
		return 0, fmt.Errorf("failed to configure migrations: %w", err)
	}
	return p.GetDBVersion(ctx)
}
