package item

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrParamCount is matched by errors.Is when a value list does not line up
// with the column list.
var ErrParamCount = errors.New("parameter count mismatch")

// ParamCountError reports a value list of the wrong length.
type ParamCountError struct {
	Got  int
	Want int
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("%s: got %d values, want %d", ErrParamCount, e.Got, e.Want)
}

func (e *ParamCountError) Unwrap() error {
	return ErrParamCount
}

// CheckCount returns a *ParamCountError unless n equals ColumnCount.
func CheckCount(n int) error {
	if want := ColumnCount(); n != want {
		return &ParamCountError{Got: n, Want: want}
	}
	return nil
}

// FromValues builds an item from values given in column order.
func FromValues(values []any) (*Item, error) {
	if err := CheckCount(len(values)); err != nil {
		return nil, err
	}
	names := ColumnNames()
	m := make(map[string]any, len(names))
	for i, name := range names {
		m[name] = values[i]
	}
	return FromMap(m)
}

// FromMap builds an item from values keyed by column name. Missing columns
// keep their zero value, unknown columns are an error. Strings are converted
// to numbers where the column needs one; nil leaves the zero value.
func FromMap(m map[string]any) (*Item, error) {
	known := make(map[string]struct{}, ColumnCount())
	for _, name := range ColumnNames() {
		known[name] = struct{}{}
	}
	var unknown []string
	for k := range m {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("unknown item columns: %s", strings.Join(unknown, ", "))
	}

	var it Item
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "db",
		WeaklyTypedInput: true,
		Result:           &it,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &it, nil
}
