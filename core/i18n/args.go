package i18n

import (
	"maps"
	"math"
	"reflect"
	"strconv"
)

// maxArgs is the number of extra call arguments taken into account.
const maxArgs = 2

type argKind uint8

const (
	argIgnored argKind = iota
	argCount
	argSelector
	argPositional
	argNamed
)

// arg is one classified call argument.
type arg struct {
	kind       argKind
	count      int
	selector   string
	positional []any
	named      map[string]any
}

// call holds the classified extra arguments of one lookup.
type call struct {
	count       int
	hasCount    bool
	selector    string
	hasSelector bool
	positional  []any
	named       map[string]any
}

// classify sorts extra arguments by their dynamic type.
// The first argument of each kind wins, a count shadows a selector,
// and anything unrecognised is dropped.
func classify(args []any) call {
	var c call
	for i, v := range args {
		if i == maxArgs {
			break
		}
		a := classifyArg(v)
		switch a.kind {
		case argCount:
			if !c.hasCount {
				c.count, c.hasCount = a.count, true
			}
		case argSelector:
			if !c.hasSelector {
				c.selector, c.hasSelector = a.selector, true
			}
		case argPositional:
			if c.positional == nil {
				c.positional = a.positional
			}
		case argNamed:
			if c.named == nil {
				c.named = a.named
			}
		}
	}
	if c.hasCount {
		c.selector, c.hasSelector = "", false
	}
	return c
}

func classifyArg(v any) arg {
	switch x := v.(type) {
	case nil, bool:
		return arg{}
	case string:
		return arg{kind: argSelector, selector: x}
	case int:
		return arg{kind: argCount, count: x}
	case float64:
		return floatArg(x)
	case float32:
		return floatArg(float64(x))
	case []any:
		return arg{kind: argPositional, positional: x}
	case map[string]any:
		return arg{kind: argNamed, named: x}
	case M:
		return arg{kind: argNamed, named: x}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return arg{kind: argSelector, selector: rv.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return arg{}
		}
		return arg{kind: argCount, count: int(n)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return arg{}
		}
		return arg{kind: argCount, count: int(n)}
	case reflect.Float32, reflect.Float64:
		return floatArg(rv.Float())
	case reflect.Slice, reflect.Array:
		positional := make([]any, rv.Len())
		for i := range positional {
			positional[i] = rv.Index(i).Interface()
		}
		return arg{kind: argPositional, positional: positional}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return arg{}
		}
		named := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			named[iter.Key().String()] = iter.Value().Interface()
		}
		return arg{kind: argNamed, named: named}
	}
	return arg{}
}

// floatArg accepts whole numbers only.
func floatArg(f float64) arg {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return arg{}
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return arg{}
	}
	return arg{kind: argCount, count: int(f)}
}

// selectorText is the selector shown in debug output for a missing translation.
func (c call) selectorText() (string, bool) {
	switch {
	case c.hasCount:
		return strconv.Itoa(c.count), true
	case c.hasSelector:
		return c.selector, true
	}
	return "", false
}

// values builds the replacement set. The caller's map is copied before
// the count is injected under "n".
func (c call) values() Values {
	named := c.named
	if c.hasCount {
		named = make(map[string]any, len(c.named)+1)
		maps.Copy(named, c.named)
		named[SelectorDefault] = c.count
	}
	return Values{Positional: c.positional, Named: named}
}
