package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/translate/core/i18n"
)

// ParseFileName splits a translation file name into its language tag and
// whether it is a go-i18n message file.
//
//	"pl.yaml"          -> pl, plain table
//	"active.pl.toml"   -> pl, go-i18n message file
func ParseFileName(name string) (language.Tag, bool, error) {
	parts := strings.Split(path.Base(name), ".")
	if len(parts) < 2 {
		return language.Und, false, fmt.Errorf("%w: no language in file name %q", ErrUnknownLanguage, name)
	}
	tag, err := language.Parse(parts[len(parts)-2])
	if err != nil {
		return language.Und, false, fmt.Errorf("%w: file name %q: %w", ErrUnknownLanguage, name, err)
	}
	return tag, len(parts) > 2, nil
}

// DecodeFile decodes data according to the file name: go-i18n message files
// for "<prefix>.<lang>.<ext>", plain tables otherwise.
func DecodeFile(name string, data []byte) (i18n.Table, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	if _, goI18n, err := ParseFileName(name); err == nil && goI18n {
		return DecodeGoI18n(name, data)
	}
	return Decode(format, data)
}

// LoadFile reads and decodes one translation file from fsys.
func LoadFile(fsys fs.FS, name string) (i18n.Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", name, err)
	}
	table, err := DecodeFile(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", name, err)
	}
	return table, nil
}
