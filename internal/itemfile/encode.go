package itemfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/itemdb/internal/item"
)

var stringEscaper = strings.NewReplacer(`\`, `\\`, "'", "''", "\n", `\n`, "\r", `\r`)

// EncodeTuple renders values as one tuple line that ParseTuple reads back.
func EncodeTuple(values []any) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		switch x := v.(type) {
		case nil:
			b.WriteString("NULL")
		case string:
			b.WriteByte('\'')
			b.WriteString(stringEscaper.Replace(x))
			b.WriteByte('\'')
		case int64:
			b.WriteString(strconv.FormatInt(x, 10))
		case float64:
			b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
		default:
			fmt.Fprint(&b, x)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// EncodeTuples writes one tuple line per item.
func EncodeTuples(w io.Writer, items []*item.Item) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		if _, err := bw.WriteString(EncodeTuple(it.Values()) + ",\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
