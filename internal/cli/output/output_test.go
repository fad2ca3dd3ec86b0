package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/itemdb/internal/cli/output"
	"github.com/leapstack-labs/itemdb/internal/cli/testutil"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    output.Mode
		wantErr bool
	}{
		{in: "", want: output.ModeAuto},
		{in: "auto", want: output.ModeAuto},
		{in: "TABLE", want: output.ModeTable},
		{in: "markdown", want: output.ModeMarkdown},
		{in: "json", want: output.ModeJSON},
		{in: "yaml", want: output.ModeYAML},
		{in: "text", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := output.ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  output.Mode
		isTTY bool
		want  output.Mode
	}{
		{name: "auto on terminal", mode: output.ModeAuto, isTTY: true, want: output.ModeTable},
		{name: "auto piped", mode: output.ModeAuto, isTTY: false, want: output.ModeMarkdown},
		{name: "empty is auto", mode: "", isTTY: false, want: output.ModeMarkdown},
		{name: "explicit json", mode: output.ModeJSON, isTTY: true, want: output.ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := output.NewRendererWithTTY(nil, nil, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

var (
	header = []string{"entry", "name"}
	rows   = [][]any{{int64(25), "Worn Shortsword"}, {int64(117), "Tough | Jerky"}}
)

func TestRenderer_Table(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeTable, true)
		require.NoError(t, tr.Table(header, rows))

		out := tr.Output()
		assert.Contains(t, out, "Worn Shortsword")
		assert.Contains(t, out, "┌")
		assert.Contains(t, out, "(2 rows)")
	})

	t.Run("markdown", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeAuto, false)
		require.NoError(t, tr.Table(header, rows))

		out := tr.Output()
		testutil.AssertNoANSI(t, out)
		testutil.AssertMarkdownTable(t, out)
		assert.Contains(t, out, "| 25 | Worn Shortsword |")
	})

	t.Run("json keeps column order", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeJSON, false)
		require.NoError(t, tr.Table(header, rows))

		out := tr.Output()
		assert.Less(t, strings.Index(out, `"entry"`), strings.Index(out, `"name"`))

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Tough | Jerky", got[1]["name"])
		assert.InDelta(t, 117, got[1]["entry"], 0)
	})

	t.Run("yaml", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeYAML, false)
		require.NoError(t, tr.Table(header, rows))

		var got []map[string]any
		require.NoError(t, yaml.Unmarshal(tr.Out.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, 25, got[0]["entry"])
		assert.Equal(t, "Worn Shortsword", got[0]["name"])
	})

	t.Run("empty", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeTable, true)
		require.NoError(t, tr.Table(header, nil))
		assert.Equal(t, "(0 rows)\n", tr.Output())
	})
}

func TestRenderer_Record(t *testing.T) {
	fields := output.Fields{
		{Name: "run_id", Value: "abc"},
		{Name: "inserted", Value: int64(3)},
		{Name: "error", Value: nil},
	}

	t.Run("yaml is ordered", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeYAML, false)
		require.NoError(t, tr.Record(fields))
		assert.Equal(t, "run_id: abc\ninserted: 3\nerror: null\n", tr.Output())
	})

	t.Run("json is ordered", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeJSON, false)
		require.NoError(t, tr.Record(fields))
		assert.JSONEq(t, `{"run_id":"abc","inserted":3,"error":null}`, tr.Output())
		assert.Less(t, strings.Index(tr.Output(), "run_id"), strings.Index(tr.Output(), "inserted"))
	})

	t.Run("markdown shows one row per field", func(t *testing.T) {
		tr := testutil.NewTestRenderer(output.ModeMarkdown, false)
		require.NoError(t, tr.Record(fields))
		assert.Contains(t, tr.Output(), "| inserted | 3 |")
		assert.Contains(t, tr.Output(), "| error | NULL |")
	})
}

func TestRenderer_Lines(t *testing.T) {
	lines := []string{"(25,'a'),", "-- comment"}

	tr := testutil.NewTestRenderer(output.ModeMarkdown, false)
	require.NoError(t, tr.Lines(lines))
	assert.Equal(t, "(25,'a'),\n-- comment\n", tr.Output())

	tr = testutil.NewTestRenderer(output.ModeJSON, false)
	require.NoError(t, tr.Lines(lines))
	var got []string
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	assert.Equal(t, lines, got)
}

func TestRenderer_Messagef(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeJSON, false)
	tr.Messagef("Wrote %s", "itemdb.yaml")
	assert.Empty(t, tr.Output(), "structured output stays parseable")
	assert.Equal(t, "Wrote itemdb.yaml\n", tr.ErrorOutput())

	tr = testutil.NewTestRenderer(output.ModeTable, true)
	tr.Messagef("Wrote %s", "itemdb.yaml")
	assert.Equal(t, "Wrote itemdb.yaml\n", tr.Output())
}
