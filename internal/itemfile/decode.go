package itemfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/itemdb/internal/item"
)

// Format selects how input lines are decoded.
type Format string

// Supported input formats.
const (
	FormatTuple Format = "tuple"
	FormatCSV   Format = "csv"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatTuple), string(FormatCSV)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTuple, FormatCSV:
		return f, nil
	case "":
		return FormatTuple, nil
	default:
		return "", fmt.Errorf("unknown input format %q (expected one of: %s)", s, strings.Join(Formats(), ", "))
	}
}

// ParseError reports a record that could not be decoded.
type ParseError struct {
	Line int // 1-based line number in the input
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is one decoded item and where it came from.
type Record struct {
	Line int
	Item *item.Item
}

// Decode reads every record from r in the given format.
func Decode(r io.Reader, format Format) ([]Record, error) {
	switch format {
	case FormatTuple, "":
		return DecodeTuples(r)
	case FormatCSV:
		return DecodeCSV(r)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// DecodeTuples decodes one value tuple per line. Blank and comment lines are
// skipped. Every tuple must carry exactly item.ColumnCount values.
func DecodeTuples(r io.Reader) ([]Record, error) {
	sc := newScanner(r)
	var records []Record
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if skipLine(text) {
			continue
		}

		values, err := ParseTuple(text)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		it, err := item.FromValues(values)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		records = append(records, Record{Line: line, Item: it})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return records, nil
}

// DecodeCSV decodes a CSV stream whose header row names item columns. Columns
// may appear in any order and may be a subset; absent columns stay zero.
func DecodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.StartLine, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		m := make(map[string]any, len(header))
		for i, name := range header {
			m[name] = row[i]
		}
		it, err := item.FromMap(m)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		records = append(records, Record{Line: line, Item: it})
	}
	return records, nil
}
