package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/itemdb/internal/item"
	"github.com/leapstack-labs/itemdb/internal/testutil"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	s, err := Open(ctx, MemoryPath, testutil.NewTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(ctx))
	return s
}

func TestOpen_CreatesMissingFile(t *testing.T) {
	ctx := context.Background()
	path := testutil.TempDBPath(t)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "database file should not exist yet")

	s, err := Open(ctx, path, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	assert.Equal(t, path, s.Path())
	_, err = os.Stat(path)
	assert.NoError(t, err, "open should create the database file")

	require.NoError(t, s.CreateTable(ctx))
	n, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "items.db")

	s, err := Open(context.Background(), path, nil)
	require.Error(t, err)
	assert.Nil(t, s)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, path, connErr.Path)
	assert.NotNil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "failed to connect to item database")
}

func TestSQLiteStore_Close(t *testing.T) {
	t.Run("never opened", func(t *testing.T) {
		assert.NoError(t, NewSQLiteStore(nil).Close())
	})

	t.Run("twice", func(t *testing.T) {
		s, err := Open(context.Background(), MemoryPath, nil)
		require.NoError(t, err)
		require.NoError(t, s.Close())
		assert.NoError(t, s.Close())
	})
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(nil)

	tests := []struct {
		name string
		op   func() error
	}{
		{"CreateTable", func() error { return s.CreateTable(ctx) }},
		{"Migrate", func() error { return s.Migrate(ctx) }},
		{"InsertItem", func() error { _, err := s.InsertItem(ctx, &item.Item{}); return err }},
		{"GetItem", func() error { _, err := s.GetItem(ctx, 1); return err }},
		{"ListItems", func() error { _, err := s.ListItems(ctx, 0); return err }},
		{"CountItems", func() error { _, err := s.CountItems(ctx); return err }},
		{"CreateRun", func() error { _, err := s.CreateRun(ctx, "x"); return err }},
		{"ListRuns", func() error { _, err := s.ListRuns(ctx, 0); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), ErrNotOpened)
		})
	}
}

func TestSQLiteStore_CreateTable(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, MemoryPath, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.CreateTable(ctx))
	require.NoError(t, s.CreateTable(ctx), "creating the table twice should be harmless")

	cols, err := s.TableColumns(ctx, item.TableName)
	require.NoError(t, err)
	assert.Len(t, cols, 128)
	assert.Equal(t, item.ColumnNames(), cols)
}

func TestSQLiteStore_Migrate(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	version, err := s.MigrationVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	require.NoError(t, s.Migrate(ctx), "re-running migrations should be a no-op")

	for _, table := range []string{item.TableName, "load_runs"} {
		cols, err := s.TableColumns(ctx, table)
		require.NoError(t, err)
		assert.NotEmpty(t, cols, "table %s should exist", table)
	}

	cols, err := s.TableColumns(ctx, item.TableName)
	require.NoError(t, err)
	assert.Equal(t, item.ColumnNames(), cols)
}

func TestSchemaSQL(t *testing.T) {
	ddl := createTableSQL()
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS items (`)
	assert.Contains(t, ddl, `"entry" INTEGER PRIMARY KEY,`)
	assert.Contains(t, ddl, `"name" TEXT NOT NULL DEFAULT '',`)
	assert.Contains(t, ddl, `"dmg_min1" REAL NOT NULL DEFAULT 0,`)
	assert.Contains(t, ddl, `"ExtraFlags" INTEGER NOT NULL DEFAULT 0`)

	ins := insertSQL()
	assert.Contains(t, ins, `INSERT INTO items ("entry", "class", "subclass", "name"`)
	assert.Equal(t, item.ColumnCount(), countRune(ins, '?'))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
