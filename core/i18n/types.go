package i18n

import (
	"fmt"
	"reflect"
)

// M is a convenience type for named placeholder maps.
type M map[string]any

// Table maps lookup keys to translation entries.
//
// An entry is either a string, or a map from selector to string (a leaf table).
// Any other value behaves exactly like a missing key.
type Table map[string]any

// Reserved selectors inside a leaf table.
const (
	// SelectorAny is the catch-all selector. It wins over SelectorDefault.
	SelectorAny = "*"
	// SelectorDefault is the plural default, also used when no selector is given.
	SelectorDefault = "n"
)

// asLeafTable returns entry as a selector map when it is one.
// Maps with integer keys are accepted; their keys are formatted in base 10.
// The returned map must be treated as read-only.
func asLeafTable(entry any) (map[string]any, bool) {
	switch m := entry.(type) {
	case map[string]any:
		return m, true
	case M:
		return m, true
	case Table:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	}

	rv := reflect.ValueOf(entry)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	switch rv.Type().Key().Kind() {
	case reflect.String, reflect.Interface,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, true
}
