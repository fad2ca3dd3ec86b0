// Package store persists item records in a local SQLite database.
// It owns the connection, the items schema, and the load run history.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	// sqlite driver (pure Go)
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrNotOpened is returned by every operation on a store without a connection.
var ErrNotOpened = errors.New("database not opened")

// ConnectionError reports that the database at Path could not be opened.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to item database %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// SQLiteStore is an item store backed by a single SQLite connection.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a store without a connection. A nil logger discards.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// Open creates a store and connects it to the database at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	s := NewSQLiteStore(logger)
	if err := s.Open(ctx, path); err != nil {
		return nil, err
	}
	return s, nil
}

// Open connects to the database at path, creating the file if it does not
// exist. Use MemoryPath for an in-memory database. Any failure is returned
// as a *ConnectionError.
func (s *SQLiteStore) Open(ctx context.Context, path string) error {
	dsn := MemoryPath
	if path != MemoryPath {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return &ConnectionError{Path: path, Err: err}
	}

	// One connection: the loader is sequential and an in-memory database
	// only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return &ConnectionError{Path: path, Err: err}
	}

	s.db = db
	s.path = path
	s.logger.Debug("opened item database", slog.String("path", path))
	return nil
}

// Close releases the connection. Closing a store that was never opened is a no-op.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the path the store was opened with.
func (s *SQLiteStore) Path() string {
	return s.path
}

// generateID creates a new UUID.
func generateID() string {
	return uuid.New().String()
}
