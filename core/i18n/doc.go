// Package i18n resolves translation keys against a static table, with
// pluralization, subkey selection, placeholder substitution and a one-time
// alias expansion pass.
//
// Lookups never fail. A key that cannot be resolved falls back to the key
// itself, to "@@key@@" in debug mode, or to no value at all, depending on the
// options. Only alias resolution returns errors, because a broken alias is an
// authoring mistake in the translation source.
//
// # Basic Usage
//
//	t, err := i18n.New(i18n.Table{
//		"plain": "I like this.",
//		"like":  "I like {thing}!",
//		"hits": map[string]any{
//			"0": "No Hits",
//			"1": "{n} Hit",
//			"n": "{n} Hits",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	t.T("plain")                            // "I like this."
//	t.T("like", i18n.M{"thing": "Sun"})     // "I like Sun!"
//	t.T("hits", 0)                          // "No Hits"
//	t.T("hits", 7)                          // "7 Hits"
//	t.T("missing")                          // "missing"
//
// # Call Arguments
//
// Up to two extra arguments are accepted in any order and classified by type:
//
//   - an integer (or a whole float) is the count, available as {n};
//   - a string is a subkey selector;
//   - a slice supplies positional values for {0}, {1}, ...;
//   - a map with string keys supplies named values.
//
// Anything else is ignored. When both a count and a subkey are given, the
// count wins. The caller's map is never modified.
//
// # Entries and Selectors
//
// An entry is a string or a leaf table: a map from selector to string. For a
// count the leaf is chosen in this order: the exact count ("13" never matches
// -13), the selector returned by the Pluralizer, the catch-all "*", and the
// default "n". A subkey tries the subkey then "*". Without either, "*" then "n"
// are tried. Any other entry value is treated as a missing key.
//
// # Pluralization
//
// The default Pluralizer is Identity, which turns the count into its decimal
// text. Custom strategies return their own selectors. They receive the
// absolute count, so -21 pluralizes like 21:
//
//	icelandic := func(n int) string {
//		if n%10 != 1 || n%100 == 11 {
//			return "p"
//		}
//		return "s"
//	}
//	t, _ := i18n.New(table, i18n.WithPluralRule(icelandic))
//
// CLDR category names are available through GetPluralRuleForLanguage and CLDR:
//
//	t, _ := i18n.New(table, i18n.WithPluralizer(i18n.CLDR(language.Polish)))
//
// # Array Mode
//
// Arr, or Translate with the Array option, returns literal runs and raw
// replacement values as a sequence, which is useful when values are not text:
//
//	t.Arr("test", i18n.M{"xyz": link}).Value() // []any{"abc ", link, " def"}
//
// A template without substituted tokens is still returned as a plain string.
//
// # Aliases
//
// ResolveAliases expands {{Key}} and {{Key[sub]}} references inside a table.
// It runs once, either explicitly or at construction with WithAliasResolution:
//
//	table, err := i18n.ResolveAliases(i18n.Table{
//		"A": "bar",
//		"B": "foo {{A}} bar",
//	})
//	// table["B"] == "foo bar bar"
//
// Failures wrap ErrUnknownAlias, ErrUnknownAliasSubkey, ErrCircularAlias or
// ErrAliasObject and can be inspected with errors.Is and errors.As.
//
// # Live Binding
//
// Table and Options return the live values. They are read on every lookup, so
// late mutation or replacement takes effect immediately:
//
//	t.Table()["foo"] = "bar"
//	t.Options().Pluralizer = i18n.PluralRule(func(int) string { return "99" })
//	t.SetOptions(nil) // every option back to its default
package i18n
