package catalog

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/translate/core/i18n"
	"github.com/dmitrymomot/translate/core/logger"
)

// maxAcceptLanguageLength bounds the Accept-Language header that is parsed.
// Longer headers fall back to the default language.
const maxAcceptLanguageLength = 4096

// Catalog holds one Translator per language and negotiates between them.
// It is safe for concurrent use; the translators themselves are not safe for
// mutation concurrent with lookups.
type Catalog struct {
	mu          sync.RWMutex
	defaultTag  language.Tag
	translators map[language.Tag]*i18n.Translator
	tags        []language.Tag
	matcher     language.Matcher
	fallback    *i18n.Translator

	translatorOpts []i18n.Option
	logger         *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog) error

// WithLogger sets the logger for load events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = log
		return nil
	}
}

// WithTranslatorOptions sets options applied to every translator the catalog builds.
// They run after the CLDR pluralizer, so they can replace it.
func WithTranslatorOptions(opts ...i18n.Option) Option {
	return func(c *Catalog) error {
		c.translatorOpts = append(c.translatorOpts, opts...)
		return nil
	}
}

// New creates an empty catalog. defaultTag is returned by negotiation when
// nothing better matches.
func New(defaultTag language.Tag, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		defaultTag:  defaultTag,
		translators: make(map[language.Tag]*i18n.Translator),
		fallback:    i18n.MustNew(nil),
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return c, nil
}

// Add registers tr for tag, replacing any existing translator.
func (c *Catalog) Add(tag language.Tag, tr *i18n.Translator) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.translators[tag] = tr
	c.rebuild()
}

// AddTable builds a translator for table with the CLDR pluralizer of tag,
// the catalog's translator options and opts, and registers it.
func (c *Catalog) AddTable(tag language.Tag, table i18n.Table, opts ...i18n.Option) (*i18n.Translator, error) {
	all := make([]i18n.Option, 0, 1+len(c.translatorOpts)+len(opts))
	all = append(all, i18n.WithPluralizer(i18n.CLDR(tag)))
	all = append(all, c.translatorOpts...)
	all = append(all, opts...)

	tr, err := i18n.New(table, all...)
	if err != nil {
		return nil, fmt.Errorf("language %s: %w", tag, err)
	}
	c.Add(tag, tr)
	return tr, nil
}

// LoadFS loads every translation file in dir. Files are named "<lang>.<ext>"
// or "<prefix>.<lang>.<ext>"; files of the same language are merged in
// name order, later keys winning. Files with unknown extensions are skipped.
func (c *Catalog) LoadFS(fsys fs.FS, dir string, opts ...i18n.Option) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	tables := make(map[language.Tag]i18n.Table)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := path.Join(dir, e.Name())
		if _, err := FormatFromPath(name); err != nil {
			c.logger.Debug("skipping file", logger.File(name))
			continue
		}
		tag, _, err := ParseFileName(name)
		if err != nil {
			return err
		}
		table, err := LoadFile(fsys, name)
		if err != nil {
			return err
		}
		if tables[tag] == nil {
			tables[tag] = i18n.Table{}
		}
		maps.Copy(tables[tag], table)
	}

	for _, tag := range slices.SortedFunc(maps.Keys(tables), compareTags) {
		if _, err := c.AddTable(tag, tables[tag], opts...); err != nil {
			return err
		}
		c.logger.Info("translations loaded",
			logger.Language(tag.String()),
			logger.Count("keys", len(tables[tag])),
		)
	}
	return nil
}

// Languages returns the registered languages, the default first.
func (c *Catalog) Languages() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.tags)
}

// Default returns the default language.
func (c *Catalog) Default() language.Tag {
	return c.defaultTag
}

// Translator returns the translator registered for tag.
func (c *Catalog) Translator(tag language.Tag) (*i18n.Translator, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tr, ok := c.translators[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, tag)
	}
	return tr, nil
}

// MatchTag negotiates the best registered language for an Accept-Language
// header such as "en-US,en;q=0.9,pl;q=0.8". An empty, oversized, malformed
// or unmatched header yields the default language.
func (c *Catalog) MatchTag(acceptLanguage string) language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.matchLocked(acceptLanguage)
}

// Match returns the translator for the best language in acceptLanguage.
// It never returns nil; without any registered language the result is an
// empty translator that echoes keys.
func (c *Catalog) Match(acceptLanguage string) *i18n.Translator {
	_, tr := c.Negotiate(acceptLanguage)
	return tr
}

// Negotiate is like Match and also returns the negotiated language.
func (c *Catalog) Negotiate(acceptLanguage string) (language.Tag, *i18n.Translator) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag := c.matchLocked(acceptLanguage)
	if tr, ok := c.translators[tag]; ok {
		return tag, tr
	}
	return tag, c.fallback
}

// Tr translates key in the language negotiated from acceptLanguage.
func (c *Catalog) Tr(acceptLanguage, key string, args ...any) string {
	return c.Match(acceptLanguage).T(key, args...)
}

func (c *Catalog) matchLocked(acceptLanguage string) language.Tag {
	if c.matcher == nil || acceptLanguage == "" || len(acceptLanguage) > maxAcceptLanguageLength {
		return c.defaultTagLocked()
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return c.defaultTagLocked()
	}
	_, index, confidence := c.matcher.Match(desired...)
	if confidence == language.No {
		return c.defaultTagLocked()
	}
	return c.tags[index]
}

// defaultTagLocked is the default language when registered, else the first one.
func (c *Catalog) defaultTagLocked() language.Tag {
	if _, ok := c.translators[c.defaultTag]; ok || len(c.tags) == 0 {
		return c.defaultTag
	}
	return c.tags[0]
}

func (c *Catalog) rebuild() {
	tags := slices.SortedFunc(maps.Keys(c.translators), compareTags)
	if i := slices.Index(tags, c.defaultTag); i > 0 {
		tags = slices.Delete(tags, i, i+1)
		tags = slices.Insert(tags, 0, c.defaultTag)
	}
	c.tags = tags
	c.matcher = language.NewMatcher(tags)
}

func compareTags(a, b language.Tag) int {
	return cmp.Compare(a.String(), b.String())
}
