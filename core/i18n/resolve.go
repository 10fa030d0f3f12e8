package i18n

import "strconv"

// resolve picks the leaf string for key.
//
// Plain strings ignore count and selector. For leaf tables the precedence is:
// with a count, exact count, pluralizer selector, "*", "n"; with a selector,
// that selector then "*"; with neither, "*" then "n".
func resolve(table Table, key string, c call, p Pluralizer) (string, bool) {
	entry, ok := table[key]
	if !ok {
		return "", false
	}
	if s, ok := entry.(string); ok {
		return s, true
	}
	leaves, ok := asLeafTable(entry)
	if !ok {
		return "", false
	}

	switch {
	case c.hasCount:
		if s, ok := leafString(leaves, strconv.Itoa(c.count)); ok {
			return s, true
		}
		// Pluralizer runs only when no exact count exists.
		return firstLeaf(leaves, pluralize(p, c.count), SelectorAny, SelectorDefault)
	case c.hasSelector:
		return firstLeaf(leaves, c.selector, SelectorAny)
	default:
		return firstLeaf(leaves, SelectorAny, SelectorDefault)
	}
}

func firstLeaf(leaves map[string]any, selectors ...string) (string, bool) {
	for _, sel := range selectors {
		if s, ok := leafString(leaves, sel); ok {
			return s, true
		}
	}
	return "", false
}

// leafString treats non-string leaves as absent.
func leafString(leaves map[string]any, selector string) (string, bool) {
	s, ok := leaves[selector].(string)
	return s, ok
}

// missing formats a lookup that found no leaf: "@@key@@" or "@@key.selector@@"
// in debug mode, nothing when key fallback is disabled, the key otherwise.
func missing(key string, c call, opts *Options) (string, bool) {
	switch {
	case opts.debug():
		if selector, ok := c.selectorText(); ok {
			return "@@" + key + "." + selector + "@@", true
		}
		return "@@" + key + "@@", true
	case opts.keyFallbackDisabled():
		return "", false
	default:
		return key, true
	}
}
