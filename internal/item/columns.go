package item

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Column describes one column of the items table.
type Column struct {
	Name string // column name as it appears in SQL
	Type string // SQLite storage class: INTEGER, REAL or TEXT

	field int
}

var columns = sync.OnceValue(func() []Column {
	t := reflect.TypeFor[Item]()
	cols := make([]Column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("db")
		if name == "" {
			panic(fmt.Sprintf("item: field %s has no db tag", f.Name))
		}
		cols = append(cols, Column{Name: name, Type: sqlType(f.Type.Kind()), field: i})
	}
	return cols
})

func sqlType(k reflect.Kind) string {
	switch k {
	case reflect.Int64:
		return "INTEGER"
	case reflect.Float64:
		return "REAL"
	case reflect.String:
		return "TEXT"
	default:
		panic(fmt.Sprintf("item: unsupported field kind %s", k))
	}
}

// Columns returns the table columns in declaration order.
func Columns() []Column {
	return slices.Clone(columns())
}

// ColumnNames returns the column names in declaration order.
func ColumnNames() []string {
	cols := columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// ColumnCount is the number of values an insert binds.
func ColumnCount() int {
	return len(columns())
}

// Values returns the field values in column order, ready to bind
// positionally against the column list.
func (it *Item) Values() []any {
	v := reflect.ValueOf(it).Elem()
	cols := columns()
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = v.Field(c.field).Interface()
	}
	return out
}

// ScanDest returns pointers to the fields in column order, for rows.Scan.
func (it *Item) ScanDest() []any {
	v := reflect.ValueOf(it).Elem()
	cols := columns()
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = v.Field(c.field).Addr().Interface()
	}
	return out
}

// ColumnMap returns the item keyed by column name.
func (it *Item) ColumnMap() map[string]any {
	values := it.Values()
	m := make(map[string]any, len(values))
	for i, c := range columns() {
		m[c.Name] = values[i]
	}
	return m
}
