// Package catalog loads translation tables from files and serves one
// i18n.Translator per language.
//
// Tables can be written as JSON, YAML or TOML, or as go-i18n v2 message
// files. The language comes from the file name:
//
//	locales/en.yaml          plain table
//	locales/pl.json          plain table
//	locales/active.de.toml   go-i18n message file
//
// A YAML table keeps the engine's shape, including integer count selectors:
//
//	hits:
//	  0: No hits
//	  1: "{n} hit"
//	  n: "{n} hits"
//	greeting: Hello, {name}!
//
// Loading a directory:
//
//	c, err := catalog.New(language.English,
//		catalog.WithTranslatorOptions(i18n.WithAliasResolution()),
//	)
//	if err != nil {
//		return err
//	}
//	if err := c.LoadFS(os.DirFS("."), "locales"); err != nil {
//		return err
//	}
//
// Every translator built by the catalog uses the CLDR pluralizer of its
// language, so leaf tables may use the category names one, few, many and
// other next to exact counts.
//
// Negotiation uses golang.org/x/text/language matching on an Accept-Language
// header and falls back to the default language:
//
//	c.Tr(r.Header.Get("Accept-Language"), "greeting", i18n.M{"name": "Ann"})
package catalog
