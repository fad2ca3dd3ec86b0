// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/itemdb/internal/cli/output"
	"github.com/leapstack-labs/itemdb/internal/item"
	"github.com/leapstack-labs/itemdb/internal/itemfile"
	itemtest "github.com/leapstack-labs/itemdb/internal/testutil"
)

// SampleEntries are the item entries written by SetupTestWorkspace.
var SampleEntries = []int64{25, 117, 6948}

// SetupTestWorkspace creates a temporary directory holding an items_to_insert
// file with one tuple line per SampleEntries item, and changes into it.
func SetupTestWorkspace(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	items := make([]*item.Item, 0, len(SampleEntries))
	for _, e := range SampleEntries {
		items = append(items, itemtest.SampleItem(e, SampleName(e)))
	}

	var buf bytes.Buffer
	buf.WriteString("-- item_template\n")
	if err := itemfile.EncodeTuples(&buf, items); err != nil {
		t.Fatalf("failed to encode sample items: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "items_to_insert"), buf.Bytes(), 0600); err != nil {
		t.Fatalf("failed to create items_to_insert: %v", err)
	}

	t.Chdir(tmpDir)
	return tmpDir
}

// SampleName returns the name given to a sample item.
func SampleName(entry int64) string {
	switch entry {
	case 25:
		return "Worn Shortsword"
	case 117:
		return "Tough Jerky"
	case 6948:
		return "Hearthstone"
	default:
		return "Item"
	}
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertMarkdownTable checks that every non-empty line is a markdown table row.
func AssertMarkdownTable(t *testing.T, md string) {
	t.Helper()
	for i, line := range strings.Split(strings.TrimSpace(md), "\n") {
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			t.Errorf("line %d is not a markdown table row: %q", i+1, line)
		}
	}
}
