// Package output renders command results as tables, markdown, JSON or YAML.
//
// Output adapts to the environment in auto mode: a styled table on a
// terminal, markdown when piped.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeTable    Mode = "table"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Modes lists the accepted mode names.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeTable), string(ModeMarkdown), string(ModeJSON), string(ModeYAML)}
}

// ParseMode validates a mode name. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeTable, ModeMarkdown, ModeJSON, ModeYAML:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected one of: %s)", s, strings.Join(Modes(), ", "))
	}
}

// Renderer writes results to out and messages to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves auto to table or markdown.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeTable
	}
	return ModeMarkdown
}

// Out returns the result writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Messagef writes a human-readable message. Structured modes send it to
// errOut so that stdout stays parseable.
func (r *Renderer) Messagef(format string, args ...any) {
	w := r.out
	if m := r.EffectiveMode(); m == ModeJSON || m == ModeYAML {
		w = r.errOut
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// Field is one named value of an ordered record.
type Field struct {
	Name  string
	Value any
}

// Fields is a record whose keys keep their order in JSON and YAML.
type Fields []Field

// MarshalJSON encodes the fields as an object in declaration order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", field.Name, err)
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// MarshalYAML encodes the fields as a mapping in declaration order.
func (f Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range f {
		var val yaml.Node
		if err := val.Encode(field.Value); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", field.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name},
			&val,
		)
	}
	return node, nil
}

// Record renders a single record. Table modes show one row per field.
func (r *Renderer) Record(f Fields) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(f)
	case ModeYAML:
		return r.YAML(f)
	}
	rows := make([][]any, 0, len(f))
	for _, field := range f {
		rows = append(rows, []any{field.Name, field.Value})
	}
	return r.Table([]string{"field", "value"}, rows)
}

// Table renders rows under header. JSON and YAML render a list of records.
func (r *Renderer) Table(header []string, rows [][]any) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(records(header, rows))
	case ModeYAML:
		return r.YAML(records(header, rows))
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.out, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = FormatValue(v)
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return nil
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	_, _ = fmt.Fprintf(r.out, "(%d rows)\n", len(rows))
	return nil
}

// Lines renders plain lines, or a list of strings in JSON and YAML.
func (r *Renderer) Lines(lines []string) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(lines)
	case ModeYAML:
		return r.YAML(lines)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(r.out, l); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func records(header []string, rows [][]any) []Fields {
	out := make([]Fields, 0, len(rows))
	for _, row := range rows {
		f := make(Fields, 0, len(header))
		for i, h := range header {
			var v any
			if i < len(row) {
				v = row[i]
			}
			f = append(f, Field{Name: h, Value: v})
		}
		out = append(out, f)
	}
	return out
}

// FormatValue renders a value for a table cell.
func FormatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
