package i18n

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Pluralizer maps a count to the selector of a plural form.
// The returned selector is used verbatim as a leaf table key.
type Pluralizer interface {
	Pluralize(n int) string
}

// PluralRule adapts a plain function to Pluralizer.
// A nil rule behaves like Identity.
type PluralRule func(n int) string

// Pluralize implements Pluralizer.
func (r PluralRule) Pluralize(n int) string {
	if r == nil {
		return strconv.Itoa(n)
	}
	return r(n)
}

// Identity is the default strategy: the count itself is the selector.
// With it, integer-keyed tables resolve by exact count, then "*", then "n".
var Identity Pluralizer = identity{}

type identity struct{}

func (identity) Pluralize(n int) string { return strconv.Itoa(n) }

// pluralize asks p for the selector of n. Identity sees the signed count so
// -13 never selects "13"; any other strategy sees the magnitude.
func pluralize(p Pluralizer, n int) string {
	if _, ok := p.(identity); ok {
		return p.Pluralize(n)
	}
	return p.Pluralize(abs(n))
}

// Plural category selectors as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DefaultPluralRule is a generic rule for languages without a specific one:
// zero, one, few (2-4), many (5-19), other.
var DefaultPluralRule PluralRule = func(n int) string {
	switch a := abs(n); {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a <= 4:
		return PluralFew
	case a < 20:
		return PluralMany
	default:
		return PluralOther
	}
}

// EnglishPluralRule: zero (0), one (1), other.
var EnglishPluralRule PluralRule = func(n int) string {
	switch abs(n) {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	default:
		return PluralOther
	}
}

// SlavicPluralRule covers Polish, Czech, Ukrainian, Croatian, Serbian and similar:
// zero, one, few (ends in 2-4 except 12-14), many.
var SlavicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	if a == 0 {
		return PluralZero
	}
	if a == 1 {
		return PluralOne
	}

	mod10, mod100 := a%10, a%100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// RomancePluralRule covers French, Italian and Portuguese:
// one (0, 1), many (1,000,000+), other.
var RomancePluralRule PluralRule = func(n int) string {
	switch a := abs(n); {
	case a <= 1:
		return PluralOne
	case a >= 1000000:
		return PluralMany
	default:
		return PluralOther
	}
}

// SpanishPluralRule: one (1), many (1,000,000+), other.
var SpanishPluralRule PluralRule = func(n int) string {
	switch a := abs(n); {
	case a == 1:
		return PluralOne
	case a >= 1000000:
		return PluralMany
	default:
		return PluralOther
	}
}

// GermanicPluralRule covers German, Dutch and the Scandinavian languages:
// one (1), other (including 0).
var GermanicPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// AsianPluralRule is for languages without plural forms (Japanese, Chinese, Korean, ...).
var AsianPluralRule PluralRule = func(int) string {
	return PluralOther
}

// ArabicPluralRule: zero, one, two, few (3-10), many (11-99), other.
var ArabicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	switch a {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	}

	switch mod100 := a % 100; {
	case mod100 >= 3 && mod100 <= 10:
		return PluralFew
	case mod100 >= 11:
		return PluralMany
	default:
		return PluralOther
	}
}

// GetPluralRuleForLanguage returns the rule for a BCP 47 language tag ("en", "pl-PL", "pt_BR").
// Only the base language matters. Unknown or malformed tags get DefaultPluralRule.
func GetPluralRuleForLanguage(lang string) PluralRule {
	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultPluralRule
	}
	base, _ := tag.Base()

	switch base.String() {
	case "en":
		return EnglishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "it", "pt":
		return RomancePluralRule
	case "es":
		return SpanishPluralRule
	case "de", "nl", "sv", "no", "nb", "nn", "da", "is":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return DefaultPluralRule
	}
}

type cldrPluralizer struct {
	tag language.Tag
}

// CLDR returns a Pluralizer backed by the CLDR cardinal rules of tag.
// Selectors are the CLDR category names (PluralOne, PluralOther, ...).
// Negative counts use the rules of their absolute value.
func CLDR(tag language.Tag) Pluralizer {
	return cldrPluralizer{tag: tag}
}

func (p cldrPluralizer) Pluralize(n int) string {
	a := abs(n)
	switch plural.Cardinal.MatchPlural(p.tag, a, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
