package loader

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/itemdb/internal/item"
	"github.com/leapstack-labs/itemdb/internal/itemfile"
	"github.com/leapstack-labs/itemdb/internal/store"
	"github.com/leapstack-labs/itemdb/internal/testutil"
)

// fakeStore records calls and fails inserts on request.
type fakeStore struct {
	inserted    []int64
	failOnEntry int64
	createErr   error
	completeErr error

	completedStatus store.RunStatus
	completedCount  int64
	completedErrMsg string
}

func (f *fakeStore) InsertItem(_ context.Context, it *item.Item) (int64, error) {
	if f.failOnEntry != 0 && it.Entry == f.failOnEntry {
		return 0, errors.New("UNIQUE constraint failed: items.entry")
	}
	f.inserted = append(f.inserted, it.Entry)
	return it.Entry, nil
}

func (f *fakeStore) CreateRun(_ context.Context, source string) (*store.Run, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &store.Run{ID: "run-1", Source: source, Status: store.RunStatusRunning}, nil
}

func (f *fakeStore) CompleteRun(_ context.Context, _ string, status store.RunStatus, loaded int64, errMsg string) error {
	f.completedStatus = status
	f.completedCount = loaded
	f.completedErrMsg = errMsg
	return f.completeErr
}

func tupleInput(t *testing.T, entries ...int64) string {
	t.Helper()
	items := make([]*item.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, testutil.SampleItem(e, "Item"))
	}
	var buf bytes.Buffer
	require.NoError(t, itemfile.EncodeTuples(&buf, items))
	return buf.String()
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		input        func(t *testing.T) string
		failOnEntry  int64
		wantErr      string
		wantInserted []int64
		wantStatus   store.RunStatus
	}{
		{
			name:         "all records inserted in order",
			input:        func(t *testing.T) string { return tupleInput(t, 25, 117, 6948) },
			wantInserted: []int64{25, 117, 6948},
			wantStatus:   store.RunStatusCompleted,
		},
		{
			name:       "empty input",
			input:      func(*testing.T) string { return "-- nothing here\n" },
			wantStatus: store.RunStatusCompleted,
		},
		{
			name:         "insert failure keeps earlier rows",
			input:        func(t *testing.T) string { return tupleInput(t, 25, 117, 6948) },
			failOnEntry:  117,
			wantErr:      "line 2: failed to insert item 117",
			wantInserted: []int64{25},
			wantStatus:   store.RunStatusFailed,
		},
		{
			name:       "decode failure inserts nothing",
			input:      func(t *testing.T) string { return tupleInput(t, 25) + "(1,2,3),\n" },
			wantErr:    "line 2",
			wantStatus: store.RunStatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &fakeStore{failOnEntry: tt.failOnEntry}
			l := New(fs, testutil.NewTestLogger(t))

			res, err := l.Load(context.Background(), "items_to_insert", strings.NewReader(tt.input(t)), itemfile.FormatTuple)
			require.NotNil(t, res)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, err.Error(), fs.completedErrMsg)
			} else {
				require.NoError(t, err)
				assert.Empty(t, fs.completedErrMsg)
			}

			assert.Equal(t, "run-1", res.RunID)
			assert.Equal(t, tt.wantInserted, fs.inserted)
			assert.Equal(t, tt.wantInserted, res.RowIDs)
			assert.Equal(t, int64(len(tt.wantInserted)), res.Inserted)
			assert.Equal(t, tt.wantStatus, fs.completedStatus)
			assert.Equal(t, res.Inserted, fs.completedCount)
		})
	}
}

func TestLoader_Load_ParamCount(t *testing.T) {
	fs := &fakeStore{}
	_, err := New(fs, nil).Load(context.Background(), "in", strings.NewReader("(1,2,3)\n"), itemfile.FormatTuple)

	require.Error(t, err)
	assert.ErrorIs(t, err, item.ErrParamCount)
	var pe *itemfile.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestLoader_Load_RunBookkeepingErrors(t *testing.T) {
	t.Run("create run fails", func(t *testing.T) {
		fs := &fakeStore{createErr: errors.New("disk I/O error")}
		res, err := New(fs, nil).Load(context.Background(), "in", strings.NewReader(""), itemfile.FormatTuple)
		assert.Nil(t, res)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create run")
		assert.Empty(t, fs.inserted)
	})

	t.Run("complete run fails after success", func(t *testing.T) {
		fs := &fakeStore{completeErr: errors.New("disk I/O error")}
		res, err := New(fs, nil).Load(context.Background(), "in", strings.NewReader(tupleInput(t, 25)), itemfile.FormatTuple)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to complete run")
		assert.Equal(t, int64(1), res.Inserted)
	})

	t.Run("load error wins over complete error", func(t *testing.T) {
		fs := &fakeStore{completeErr: errors.New("disk I/O error"), failOnEntry: 25}
		_, err := New(fs, nil).Load(context.Background(), "in", strings.NewReader(tupleInput(t, 25)), itemfile.FormatTuple)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert item 25")
	})
}

func TestLoader_Load_CSV(t *testing.T) {
	fs := &fakeStore{}
	input := "entry,name,Quality\n25,Worn Shortsword,1\n117,Tough Jerky,1\n"

	res, err := New(fs, nil).Load(context.Background(), "items.csv", strings.NewReader(input), itemfile.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Inserted)
	assert.Equal(t, []int64{25, 117}, fs.inserted)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	dbPath := testutil.TempDBPath(t)
	inputPath := testutil.WriteFile(t, "items_to_insert", tupleInput(t, 25, 117))

	res, err := Run(ctx, Options{
		DatabasePath: dbPath,
		InputPath:    inputPath,
		Format:       itemfile.FormatTuple,
		Logger:       testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Inserted)
	assert.Equal(t, []int64{25, 117}, res.RowIDs)
	assert.Equal(t, inputPath, res.Source)

	s, err := store.Open(ctx, dbPath, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	count, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := s.GetItem(ctx, 117)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleItem(117, "Item"), got)

	run, err := s.GetRun(ctx, res.RunID)
	require.NoError(t, err)
	assert.Equal(t, store.RunStatusCompleted, run.Status)
	assert.Equal(t, int64(2), run.ItemsLoaded)
	assert.NotNil(t, run.CompletedAt)
}

func TestRun_DuplicateLoadFailsWithoutRollback(t *testing.T) {
	ctx := context.Background()
	dbPath := testutil.TempDBPath(t)

	first := testutil.WriteFile(t, "first", tupleInput(t, 25))
	_, err := Run(ctx, Options{DatabasePath: dbPath, InputPath: first})
	require.NoError(t, err)

	second := testutil.WriteFile(t, "second", tupleInput(t, 117, 25, 6948))
	res, err := Run(ctx, Options{DatabasePath: dbPath, InputPath: second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, int64(1), res.Inserted)

	s, err := store.Open(ctx, dbPath, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	count, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "rows before the failure stay")

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, store.RunStatusFailed, runs[0].Status)
	assert.Equal(t, int64(1), runs[0].ItemsLoaded)
	assert.NotEmpty(t, runs[0].Error)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing database directory", func(t *testing.T) {
		_, err := Run(ctx, Options{
			DatabasePath: "/nonexistent/dir/items.db",
			InputPath:    testutil.WriteFile(t, "in", ""),
		})
		var connErr *store.ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.Equal(t, "/nonexistent/dir/items.db", connErr.Path)
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := Run(ctx, Options{
			DatabasePath: testutil.TempDBPath(t),
			InputPath:    "/nonexistent/items_to_insert",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open input file")
	})
}
