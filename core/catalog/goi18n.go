package catalog

import (
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/translate/core/i18n"
)

var messageUnmarshalers = map[string]goi18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// templateField matches a bare field reference such as {{.Name}} or {{ .Count }}.
var templateField = regexp.MustCompile(`\{\{\s*\.([\p{L}\p{N}_]+)\s*\}\}`)

// DecodeGoI18n parses a go-i18n v2 message file. The language and format are
// taken from path, e.g. "active.pl.toml".
//
// A message with only an "other" form becomes a plain string. Plural
// messages become leaf tables keyed by CLDR category, with "other" copied to
// the "n" selector. {{.Field}} references are rewritten to {Field}, and
// {{.Count}} and {{.PluralCount}} to {n}.
func DecodeGoI18n(path string, data []byte) (i18n.Table, error) {
	mf, err := goi18n.ParseMessageFileBytes(data, path, messageUnmarshalers)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message file %q: %w", path, err)
	}

	table := make(i18n.Table, len(mf.Messages))
	for _, m := range mf.Messages {
		forms := map[string]string{
			i18n.PluralZero:  m.Zero,
			i18n.PluralOne:   m.One,
			i18n.PluralTwo:   m.Two,
			i18n.PluralFew:   m.Few,
			i18n.PluralMany:  m.Many,
			i18n.PluralOther: m.Other,
		}

		leaves := make(map[string]any, len(forms)+1)
		for category, text := range forms {
			if text != "" {
				leaves[category] = convertTemplate(text)
			}
		}

		if len(leaves) == 1 && m.Other != "" {
			table[m.ID] = leaves[i18n.PluralOther]
			continue
		}
		if m.Other != "" {
			leaves[i18n.SelectorDefault] = leaves[i18n.PluralOther]
		}
		table[m.ID] = leaves
	}
	return table, nil
}

func convertTemplate(s string) string {
	return templateField.ReplaceAllStringFunc(s, func(match string) string {
		name := templateField.FindStringSubmatch(match)[1]
		switch name {
		case "Count", "PluralCount":
			return "{" + i18n.SelectorDefault + "}"
		default:
			return "{" + name + "}"
		}
	})
}
