package engine

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// inspector is implemented by script objects that know their own repr form.
type inspector interface {
	Inspect() string
}

// FormatValue renders a native Go value, as exported by an embedded engine, in
// a repr style: strings are quoted and containers show the repr of their
// members. nilLabel is the engine's spelling of a missing value.
func FormatValue(v any, nilLabel string) string {
	switch x := v.(type) {
	case nil:
		return nilLabel
	case inspector:
		return x.Inspect()
	case string:
		return strconv.Quote(x)
	case []byte:
		return fmt.Sprintf("byte_slice(%s)", strconv.Quote(string(x)))
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case error:
		return fmt.Sprintf("error(%s)", strconv.Quote(x.Error()))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface(), nilLabel)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts,
				FormatValue(iter.Key().Interface(), nilLabel)+": "+FormatValue(iter.Value().Interface(), nilLabel))
		}
		slices.Sort(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Pointer:
		if rv.IsNil() {
			return nilLabel
		}
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
