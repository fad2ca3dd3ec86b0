package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/itemdb/internal/item"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidEntry is returned for an entry below 1. The entry is the row id,
// and row ids are positive.
var ErrInvalidEntry = errors.New("entry must be a positive integer")

// InsertItem inserts it into the items table and returns the new row id.
func (s *SQLiteStore) InsertItem(ctx context.Context, it *item.Item) (int64, error) {
	return s.InsertValues(ctx, it.Values())
}

// InsertValues inserts one row from values given in column order. A value
// list that does not have exactly item.ColumnCount elements is rejected with
// a *item.ParamCountError before anything reaches the database. The first
// value is the entry and must be an int64 of at least 1 (ErrInvalidEntry).
func (s *SQLiteStore) InsertValues(ctx context.Context, values []any) (int64, error) {
	if s.db == nil {
		return 0, ErrNotOpened
	}
	if err := item.CheckCount(len(values)); err != nil {
		return 0, err
	}
	if entry, ok := values[0].(int64); !ok || entry < 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidEntry, values[0])
	}

	result, err := s.db.ExecContext(ctx, insertSQL(), values...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted row id: %w", err)
	}

	s.logger.Debug("inserted item", slog.Int64("row_id", id))
	return id, nil
}

// GetItem reads the item stored under rowID.
func (s *SQLiteStore) GetItem(ctx context.Context, rowID int64) (*item.Item, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}

	var it item.Item
	err := s.db.QueryRowContext(ctx, selectSQL()+" WHERE rowid = ?", rowID).Scan(it.ScanDest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", rowID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &it, nil
}

// ListItems returns up to limit items ordered by entry. A limit of zero or
// less returns every item.
func (s *SQLiteStore) ListItems(ctx context.Context, limit int) ([]*item.Item, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}

	query := selectSQL() + " ORDER BY " + quoteIdent(item.PrimaryKey)
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*item.Item
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(it.ScanDest()...); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// CountItems returns the number of rows in the items table.
func (s *SQLiteStore) CountItems(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, ErrNotOpened
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+item.TableName).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}
