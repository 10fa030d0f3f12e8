package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/translate/core/catalog"
	"github.com/dmitrymomot/translate/core/i18n"
)

// i18nTranslatorContextKey is used as a key for storing the translator in request context.
type i18nTranslatorContextKey struct{}

// i18nLanguageContextKey is used as a key for storing the negotiated language in request context.
type i18nLanguageContextKey struct{}

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Catalog holds the translators to choose from (required)
	Catalog *catalog.Catalog
	// LanguageExtractor returns the language preference of the request in
	// Accept-Language syntax. Default: the Accept-Language header
	LanguageExtractor func(r *http.Request) string
	// SetContentLanguage adds a Content-Language response header
	SetContentLanguage bool
}

// I18n creates an i18n middleware with default configuration.
// It negotiates the language from the Accept-Language header and stores the
// matching translator in the request context.
func I18n(c *catalog.Catalog) func(http.Handler) http.Handler {
	return I18nWithConfig(I18nConfig{Catalog: c})
}

// I18nWithConfig creates an i18n middleware with custom configuration.
func I18nWithConfig(cfg I18nConfig) func(http.Handler) http.Handler {
	if cfg.Catalog == nil {
		panic("i18n middleware: catalog is required")
	}

	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(r *http.Request) string {
			return r.Header.Get("Accept-Language")
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tag, translator := cfg.Catalog.Negotiate(cfg.LanguageExtractor(r))

			if cfg.SetContentLanguage {
				w.Header().Set("Content-Language", tag.String())
			}

			ctx := context.WithValue(r.Context(), i18nTranslatorContextKey{}, translator)
			ctx = context.WithValue(ctx, i18nLanguageContextKey{}, tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator retrieves the translator from the context.
// Returns the translator and a boolean indicating whether it was found.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(i18nTranslatorContextKey{}).(*i18n.Translator)
	return translator, ok
}

// GetLanguage retrieves the negotiated language from the context.
func GetLanguage(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(i18nLanguageContextKey{}).(language.Tag)
	return tag, ok
}

// T translates key with the translator stored in ctx. Without one, the key is returned.
func T(ctx context.Context, key string, args ...any) string {
	if translator, ok := GetTranslator(ctx); ok {
		return translator.T(key, args...)
	}
	return key
}
