// Package middleware provides net/http middleware that makes a translator
// available to request handlers.
//
// # I18n Middleware
//
// The I18n middleware negotiates the request language against a
// catalog.Catalog and stores the matching translator in the request context:
//
//	import "github.com/dmitrymomot/translate/middleware"
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		fmt.Fprintln(w, middleware.T(r.Context(), "greeting", i18n.M{"name": "Ann"}))
//	})
//	http.ListenAndServe(":8080", middleware.I18n(c)(mux))
//
// The language source can be replaced, for example with a query parameter:
//
//	middleware.I18nWithConfig(middleware.I18nConfig{
//		Catalog:            c,
//		SetContentLanguage: true,
//		LanguageExtractor: func(r *http.Request) string {
//			return r.URL.Query().Get("lang")
//		},
//	})
//
// GetTranslator and GetLanguage read the stored values back. T falls back to
// the key when no translator is stored.
package middleware
