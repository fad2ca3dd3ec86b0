// Package loader loads item records from an input file into the item store.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/itemdb/internal/item"
	"github.com/leapstack-labs/itemdb/internal/itemfile"
	"github.com/leapstack-labs/itemdb/internal/store"
)

// Default locations used when no paths are configured.
const (
	DefaultDatabasePath = "items.db"
	DefaultInputPath    = "items_to_insert"
)

// ItemStore is the part of the store a load needs.
type ItemStore interface {
	InsertItem(ctx context.Context, it *item.Item) (int64, error)
	CreateRun(ctx context.Context, source string) (*store.Run, error)
	CompleteRun(ctx context.Context, id string, status store.RunStatus, loaded int64, errMsg string) error
}

// Result summarizes one load.
type Result struct {
	RunID    string
	Source   string
	Inserted int64
	RowIDs   []int64
}

// Loader inserts decoded items into an ItemStore and records each load as a run.
type Loader struct {
	store  ItemStore
	logger *slog.Logger
}

// New creates a loader. A nil logger discards.
func New(s ItemStore, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{store: s, logger: logger}
}

// Load decodes every record from r, then inserts them in input order.
// Decoding fails fast before anything is written. Inserts are not wrapped in
// a transaction: when one fails, the rows before it stay and the run is
// marked failed with the number inserted so far. The returned Result is
// non-nil whenever a run was created.
func (l *Loader) Load(ctx context.Context, source string, r io.Reader, format itemfile.Format) (*Result, error) {
	l.logger.Info("starting load", "source", source, "format", string(format))

	run, err := l.store.CreateRun(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	l.logger.Debug("created run", "run_id", run.ID)

	result := &Result{RunID: run.ID, Source: source}

	loadErr := l.load(ctx, r, format, result)

	status, errMsg := store.RunStatusCompleted, ""
	if loadErr != nil {
		status, errMsg = store.RunStatusFailed, loadErr.Error()
		l.logger.Info("load failed", "run_id", run.ID, "inserted", result.Inserted, "error", errMsg)
	} else {
		l.logger.Info("load completed", "run_id", run.ID, "inserted", result.Inserted)
	}

	if err := l.store.CompleteRun(ctx, run.ID, status, result.Inserted, errMsg); err != nil {
		if loadErr != nil {
			l.logger.Warn("failed to record run outcome", "run_id", run.ID, "error", err)
			return result, loadErr
		}
		return result, fmt.Errorf("failed to complete run: %w", err)
	}
	return result, loadErr
}

func (l *Loader) load(ctx context.Context, r io.Reader, format itemfile.Format, result *Result) error {
	records, err := itemfile.Decode(r, format)
	if err != nil {
		return err
	}
	l.logger.Debug("decoded input", "records", len(records))

	for _, rec := range records {
		rowID, err := l.store.InsertItem(ctx, rec.Item)
		if err != nil {
			return fmt.Errorf("line %d: failed to insert item %d: %w", rec.Line, rec.Item.Entry, err)
		}
		l.logger.Debug("inserted item", "entry", rec.Item.Entry, "row_id", rowID)
		result.RowIDs = append(result.RowIDs, rowID)
		result.Inserted++
	}
	return nil
}

// Options configures Run.
type Options struct {
	DatabasePath string
	InputPath    string
	Format       itemfile.Format
	Logger       *slog.Logger
}

// Run opens the database at opts.DatabasePath, brings its schema up to date,
// loads opts.InputPath into it and closes it again. Empty paths fall back to
// DefaultDatabasePath and DefaultInputPath.
func Run(ctx context.Context, opts Options) (res *Result, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	dbPath := opts.DatabasePath
	if dbPath == "" {
		dbPath = DefaultDatabasePath
	}
	inputPath := opts.InputPath
	if inputPath == "" {
		inputPath = DefaultInputPath
	}

	s, err := store.Open(ctx, dbPath, logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", cerr)
		}
	}()

	if err := s.Migrate(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return New(s, logger).Load(ctx, inputPath, f, opts.Format)
}
