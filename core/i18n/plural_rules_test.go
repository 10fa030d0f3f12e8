package i18n_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/translate/core/i18n"
)

func TestPluralRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rule     i18n.PluralRule
		n        int
		expected string
	}{
		{"default zero", i18n.DefaultPluralRule, 0, i18n.PluralZero},
		{"default one", i18n.DefaultPluralRule, 1, i18n.PluralOne},
		{"default few", i18n.DefaultPluralRule, 4, i18n.PluralFew},
		{"default many", i18n.DefaultPluralRule, 19, i18n.PluralMany},
		{"default other", i18n.DefaultPluralRule, 20, i18n.PluralOther},
		{"default negative", i18n.DefaultPluralRule, -5, i18n.PluralMany},

		{"english zero", i18n.EnglishPluralRule, 0, i18n.PluralZero},
		{"english one", i18n.EnglishPluralRule, 1, i18n.PluralOne},
		{"english negative one", i18n.EnglishPluralRule, -1, i18n.PluralOne},
		{"english other", i18n.EnglishPluralRule, 2, i18n.PluralOther},

		{"slavic one", i18n.SlavicPluralRule, 1, i18n.PluralOne},
		{"slavic few", i18n.SlavicPluralRule, 22, i18n.PluralFew},
		{"slavic teen is many", i18n.SlavicPluralRule, 12, i18n.PluralMany},
		{"slavic many", i18n.SlavicPluralRule, 5, i18n.PluralMany},
		{"slavic negative few", i18n.SlavicPluralRule, -3, i18n.PluralFew},

		{"romance zero is one", i18n.RomancePluralRule, 0, i18n.PluralOne},
		{"romance other", i18n.RomancePluralRule, 2, i18n.PluralOther},
		{"romance million", i18n.RomancePluralRule, 1000000, i18n.PluralMany},

		{"spanish zero is other", i18n.SpanishPluralRule, 0, i18n.PluralOther},
		{"spanish one", i18n.SpanishPluralRule, 1, i18n.PluralOne},
		{"spanish million", i18n.SpanishPluralRule, 1000000, i18n.PluralMany},

		{"germanic zero is other", i18n.GermanicPluralRule, 0, i18n.PluralOther},
		{"germanic one", i18n.GermanicPluralRule, 1, i18n.PluralOne},

		{"asian always other", i18n.AsianPluralRule, 1, i18n.PluralOther},

		{"arabic zero", i18n.ArabicPluralRule, 0, i18n.PluralZero},
		{"arabic two", i18n.ArabicPluralRule, 2, i18n.PluralTwo},
		{"arabic few", i18n.ArabicPluralRule, 103, i18n.PluralFew},
		{"arabic many", i18n.ArabicPluralRule, 11, i18n.PluralMany},
		{"arabic other", i18n.ArabicPluralRule, 100, i18n.PluralOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.Pluralize(tt.n))
		})
	}
}

func TestPluralRule_Nil(t *testing.T) {
	t.Parallel()

	var rule i18n.PluralRule
	assert.Equal(t, "7", rule.Pluralize(7))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 13, -13, 1000} {
		assert.Equal(t, strconv.Itoa(n), i18n.Identity.Pluralize(n))
	}
}

func TestGetPluralRuleForLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang     string
		n        int
		expected string
	}{
		{"en", 1, i18n.PluralOne},
		{"en-US", 2, i18n.PluralOther},
		{"EN", 0, i18n.PluralZero},
		{"pl", 2, i18n.PluralFew},
		{"ru", 5, i18n.PluralMany},
		{"uk", 12, i18n.PluralMany},
		{"fr", 0, i18n.PluralOne},
		{"pt-BR", 2, i18n.PluralOther},
		{"es-MX", 1000000, i18n.PluralMany},
		{"de", 1, i18n.PluralOne},
		{"nl", 0, i18n.PluralOther},
		{"ja", 0, i18n.PluralOther},
		{"ar", 3, i18n.PluralFew},

		// malformed or unknown tags use the default rule
		{"", 1, i18n.PluralOne},
		{"e", 2, i18n.PluralFew},
		{"not a tag", 5, i18n.PluralMany},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"_"+strconv.Itoa(tt.n), func(t *testing.T) {
			rule := i18n.GetPluralRuleForLanguage(tt.lang)
			assert.Equal(t, tt.expected, rule(tt.n), "For lang=%s, n=%d", tt.lang, tt.n)
		})
	}
}

func TestCLDR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      language.Tag
		n        int
		expected string
	}{
		{language.English, 1, i18n.PluralOne},
		{language.English, 0, i18n.PluralOther},
		{language.English, 5, i18n.PluralOther},
		{language.English, -1, i18n.PluralOne},
		{language.Polish, 1, i18n.PluralOne},
		{language.Polish, 3, i18n.PluralFew},
		{language.Polish, 5, i18n.PluralMany},
		{language.Polish, 22, i18n.PluralFew},
		{language.Japanese, 1, i18n.PluralOther},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String()+"_"+strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.CLDR(tt.tag).Pluralize(tt.n))
		})
	}
}
