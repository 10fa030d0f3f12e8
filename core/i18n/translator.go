package i18n

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/translate/core/logger"
)

// Translator resolves keys against a live table.
//
// The table and the options are read on every call, so both can be mutated
// or replaced between lookups. A Translator is not safe for mutation
// concurrent with lookups.
type Translator struct {
	table Table
	opts  *Options

	logger            *slog.Logger
	missingKeyHandler func(key, selector string)
}

// New creates a Translator over table. A nil table is treated as empty.
// When alias resolution is enabled the table is replaced by its resolved copy,
// and alias failures are returned.
func New(table Table, opts ...Option) (*Translator, error) {
	if table == nil {
		table = Table{}
	}
	t := &Translator{
		table: table,
		opts:  &Options{},
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if t.opts.resolveAliases() {
		resolved, err := ResolveAliases(t.table)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve aliases: %w", err)
		}
		t.table = resolved
	}

	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(table Table, opts ...Option) *Translator {
	t, err := New(table, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Table returns the live table. Changes to it are visible to the next lookup.
func (t *Translator) Table() Table {
	return t.table
}

// SetTable replaces the table. Nil installs an empty table.
// Aliases are not resolved again; run ResolveAliases first if needed.
func (t *Translator) SetTable(table Table) {
	if table == nil {
		table = Table{}
	}
	t.table = table
}

// Options returns the live options. It is nil after SetOptions(nil).
func (t *Translator) Options() *Options {
	return t.opts
}

// SetOptions replaces the options. Nil restores every default.
func (t *Translator) SetOptions(opts *Options) {
	t.opts = opts
}

// Translate resolves key with up to two extra arguments, in any order:
// an integer count, a subkey string, a slice of positional values, or a map
// of named values. Anything else is ignored.
//
// The result is a segment sequence when the Array option is set and a token
// was substituted, plain text otherwise. Translate never fails: a missing
// translation yields the key, "@@key@@" in debug mode, or no value when key
// fallback is disabled.
func (t *Translator) Translate(key string, args ...any) Result {
	return t.translate(key, t.opts.array(), args)
}

// Arr is like Translate but always uses array mode.
func (t *Translator) Arr(key string, args ...any) Result {
	return t.translate(key, true, args)
}

// T is like Translate but always returns text.
// A missing translation with key fallback disabled yields "".
func (t *Translator) T(key string, args ...any) string {
	return t.translate(key, false, args).String()
}

// Lookup is like T and also reports whether a value was produced.
func (t *Translator) Lookup(key string, args ...any) (string, bool) {
	r := t.translate(key, false, args)
	return r.String(), r.OK()
}

func (t *Translator) translate(key string, arrayMode bool, args []any) Result {
	opts := t.opts
	c := classify(args)

	leaf, ok := resolve(t.table, key, c, opts.pluralizer())
	if !ok {
		t.reportMissing(key, c)
		if leaf, ok = missing(key, c, opts); !ok {
			return Result{}
		}
	}

	return Substitute(leaf, c.values(), arrayMode)
}

func (t *Translator) reportMissing(key string, c call) {
	selector, _ := c.selectorText()
	if t.missingKeyHandler != nil {
		t.missingKeyHandler(key, selector)
	}
	if t.logger != nil {
		t.logger.Debug("translation missing",
			logger.TranslationKey(key),
			logger.Selector(selector),
		)
	}
}
