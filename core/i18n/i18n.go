package i18n

import (
	"fmt"
	"log/slog"
)

// Options controls lookup behaviour. A Translator reads its options on every
// call, so changes take effect on the next lookup. A nil *Options and every
// zero field fall back to their defaults independently.
type Options struct {
	// Pluralizer picks the plural selector for a count. Nil means Identity.
	Pluralizer Pluralizer

	// Array makes Translate return segment sequences for templates with substituted tokens.
	Array bool

	// Debug renders missing translations as "@@key@@" or "@@key.selector@@".
	Debug bool

	// DisableKeyFallback makes missing translations produce no value
	// instead of the lookup key. Debug takes priority.
	DisableKeyFallback bool

	// ResolveAliases expands {{Key}} references once, when the Translator is built.
	ResolveAliases bool
}

func (o *Options) pluralizer() Pluralizer {
	if o == nil || o.Pluralizer == nil {
		return Identity
	}
	if rule, ok := o.Pluralizer.(PluralRule); ok && rule == nil {
		return Identity
	}
	return o.Pluralizer
}

func (o *Options) array() bool {
	return o != nil && o.Array
}

func (o *Options) debug() bool {
	return o != nil && o.Debug
}

func (o *Options) keyFallbackDisabled() bool {
	return o != nil && o.DisableKeyFallback
}

func (o *Options) resolveAliases() bool {
	return o != nil && o.ResolveAliases
}

// Option configures a Translator during construction.
type Option func(*Translator) error

// WithOptions installs opts as the live options value. The caller keeps the
// pointer and may mutate it later. Nil is ignored.
func WithOptions(opts *Options) Option {
	return func(t *Translator) error {
		if opts != nil {
			t.opts = opts
		}
		return nil
	}
}

// WithPluralizer sets the plural strategy.
func WithPluralizer(p Pluralizer) Option {
	return func(t *Translator) error {
		if p == nil {
			return fmt.Errorf("pluralizer cannot be nil")
		}
		t.opts.Pluralizer = p
		return nil
	}
}

// WithPluralRule sets a plain function as the plural strategy.
func WithPluralRule(rule func(n int) string) Option {
	return func(t *Translator) error {
		if rule == nil {
			return fmt.Errorf("plural rule cannot be nil")
		}
		t.opts.Pluralizer = PluralRule(rule)
		return nil
	}
}

// WithArray makes Translate return segment sequences by default.
func WithArray() Option {
	return func(t *Translator) error {
		t.opts.Array = true
		return nil
	}
}

// WithDebug renders missing translations as "@@key@@".
func WithDebug() Option {
	return func(t *Translator) error {
		t.opts.Debug = true
		return nil
	}
}

// WithUseKeyForMissingTranslation controls whether a missing translation
// falls back to its key (the default) or produces no value.
func WithUseKeyForMissingTranslation(use bool) Option {
	return func(t *Translator) error {
		t.opts.DisableKeyFallback = !use
		return nil
	}
}

// WithAliasResolution expands {{Key}} references once, at construction.
func WithAliasResolution() Option {
	return func(t *Translator) error {
		t.opts.ResolveAliases = true
		return nil
	}
}

// WithLogger sets the logger used to report missing translations at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) error {
		t.logger = logger
		return nil
	}
}

// WithMissingKeyHandler sets a function called whenever a lookup finds no translation.
// The handler receives the key and the selector text ("" when none was given).
// This is useful for collecting missing translations during development.
func WithMissingKeyHandler(handler func(key, selector string)) Option {
	return func(t *Translator) error {
		t.missingKeyHandler = handler
		return nil
	}
}
