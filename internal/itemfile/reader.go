// Package itemfile reads item input files: raw line previews and decoding of
// item_template style value tuples or CSV into item records.
package itemfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// DefaultPreviewLines is how many raw lines a preview collects.
const DefaultPreviewLines = 11

// maxLineSize bounds a single input line. Item tuples are long but well
// under this.
const maxLineSize = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// ReadLines collects at most limit lines from r with trailing whitespace
// removed. A limit of zero or less reads every line. Reading stops at the
// limit, the rest of r is left unread.
func ReadLines(r io.Reader, limit int) ([]string, error) {
	sc := newScanner(r)
	lines := []string{}
	for sc.Scan() {
		lines = append(lines, strings.TrimRightFunc(sc.Text(), unicode.IsSpace))
		if limit > 0 && len(lines) == limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// ReadFile is ReadLines over the file at path.
func ReadFile(path string, limit int) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the user's input file
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadLines(f, limit)
}
