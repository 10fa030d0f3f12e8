package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/translate/core/catalog"
	"github.com/dmitrymomot/translate/core/i18n"
	"github.com/dmitrymomot/translate/middleware"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(language.English)
	require.NoError(t, err)

	_, err = c.AddTable(language.English, i18n.Table{
		"greeting": "Hello, {name}!",
		"items":    map[string]any{"one": "{n} item", "other": "{n} items"},
	})
	require.NoError(t, err)
	_, err = c.AddTable(language.Polish, i18n.Table{
		"greeting": "Cześć, {name}!",
		"items":    map[string]any{"one": "{n} rzecz", "few": "{n} rzeczy", "many": "{n} rzeczy"},
	})
	require.NoError(t, err)
	return c
}

func greetingHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(middleware.T(r.Context(), "greeting", i18n.M{"name": "Ann"})))
}

func TestI18n(t *testing.T) {
	t.Parallel()
	handler := middleware.I18n(newCatalog(t))(http.HandlerFunc(greetingHandler))

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"no header uses default", "", "Hello, Ann!"},
		{"polish", "pl-PL,pl;q=0.9,en;q=0.8", "Cześć, Ann!"},
		{"quality order", "en;q=0.4,pl;q=0.7", "Cześć, Ann!"},
		{"unsupported falls back", "ja", "Hello, Ann!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.expected, rec.Body.String())
		})
	}
}

func TestI18nWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("custom extractor and content language", func(t *testing.T) {
		handler := middleware.I18nWithConfig(middleware.I18nConfig{
			Catalog:            newCatalog(t),
			SetContentLanguage: true,
			LanguageExtractor: func(r *http.Request) string {
				return r.URL.Query().Get("lang")
			},
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag, ok := middleware.GetLanguage(r.Context())
			assert.True(t, ok)
			assert.Equal(t, language.Polish, tag)
			_, _ = w.Write([]byte(middleware.T(r.Context(), "items", 3)))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=pl", nil))
		assert.Equal(t, "3 rzeczy", rec.Body.String())
		assert.Equal(t, "pl", rec.Header().Get("Content-Language"))
	})

	t.Run("skip", func(t *testing.T) {
		handler := middleware.I18nWithConfig(middleware.I18nConfig{
			Catalog: newCatalog(t),
			Skip:    func(*http.Request) bool { return true },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := middleware.GetTranslator(r.Context())
			assert.False(t, ok)
			_, _ = w.Write([]byte(middleware.T(r.Context(), "greeting")))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "greeting", rec.Body.String())
	})

	t.Run("requires catalog", func(t *testing.T) {
		assert.Panics(t, func() {
			middleware.I18nWithConfig(middleware.I18nConfig{})
		})
	})
}
