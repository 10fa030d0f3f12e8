package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Values holds the replacement values for one substitution.
// Positional values answer numeric tokens ({0}, {1}), named values answer the rest.
type Values struct {
	Positional []any
	Named      map[string]any
}

// lookup resolves a token identifier. A numeric identifier out of the
// positional range still gets a chance in the named map.
func (v Values) lookup(name string) (any, bool) {
	if idx, err := strconv.Atoi(name); err == nil && idx >= 0 && idx < len(v.Positional) {
		return v.Positional[idx], true
	}
	val, ok := v.Named[name]
	return val, ok
}

// Result is the outcome of a lookup or a substitution.
//
// A result holds either plain text or, in array mode, a sequence of literal
// strings and raw replacement values. A missing translation with key fallback
// disabled produces a result that is not OK.
type Result struct {
	text     string
	segments []any
	ok       bool
}

// OK reports whether the result carries a value.
func (r Result) OK() bool {
	return r.ok
}

// Value returns nil, a string, or a []any segment sequence.
func (r Result) Value() any {
	switch {
	case !r.ok:
		return nil
	case r.segments != nil:
		return r.segments
	default:
		return r.text
	}
}

// Segments returns the segment sequence, or nil when the result is plain text.
func (r Result) Segments() []any {
	return r.segments
}

// String renders the result as text. Segments are concatenated.
func (r Result) String() string {
	if r.segments == nil {
		return r.text
	}
	var b strings.Builder
	for _, s := range r.segments {
		b.WriteString(stringify(s))
	}
	return b.String()
}

// Substitute replaces {token} placeholders in template in a single pass.
//
// Tokens without a value are kept verbatim, braces included. Replacement text
// is never scanned again, so values that contain braces are inserted as-is.
//
// In array mode the result is a sequence of literal runs and raw values:
//
//	template: "abc {xyz} def"
//	values:   Values{Named: M{"xyz": v}}
//	returns:  []any{"abc ", v, " def"}
//
// When nothing was substituted the plain template is returned in both modes.
func Substitute(template string, values Values, arrayMode bool) Result {
	var (
		b        strings.Builder
		segments []any
		replaced bool
		last     int
	)

	for i := 0; i < len(template); {
		if template[i] != '{' {
			i++
			continue
		}
		end := tokenEnd(template, i+1)
		if end < 0 {
			i++
			continue
		}
		val, ok := values.lookup(template[i+1 : end])
		if !ok {
			i = end + 1
			continue
		}

		replaced = true
		if arrayMode {
			if lit := template[last:i]; lit != "" {
				segments = append(segments, lit)
			}
			segments = append(segments, val)
		} else {
			b.WriteString(template[last:i])
			b.WriteString(stringify(val))
		}
		i = end + 1
		last = i
	}

	if !replaced {
		return Result{text: template, ok: true}
	}
	if arrayMode {
		if tail := template[last:]; tail != "" {
			segments = append(segments, tail)
		}
		return Result{segments: segments, ok: true}
	}
	b.WriteString(template[last:])
	return Result{text: b.String(), ok: true}
}

// tokenEnd returns the index of the closing brace of a token whose
// identifier starts at start, or -1 when there is no valid token.
func tokenEnd(s string, start int) int {
	for j := start; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		if r == '}' {
			if j == start {
				return -1
			}
			return j
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}
		j += size
	}
	return -1
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
