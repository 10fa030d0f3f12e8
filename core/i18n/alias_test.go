package i18n_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translate/core/i18n"
)

func TestResolveAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      i18n.Table
		expected i18n.Table
	}{
		{
			name:     "simple alias",
			raw:      i18n.Table{"A": "bar", "B": "foo {{A}} bar"},
			expected: i18n.Table{"A": "bar", "B": "foo bar bar"},
		},
		{
			name:     "declaration order does not matter",
			raw:      i18n.Table{"B": "foo {{A}} bar", "A": "bar"},
			expected: i18n.Table{"A": "bar", "B": "foo bar bar"},
		},
		{
			name: "nested aliases",
			raw: i18n.Table{
				"A": "A",
				"B": "B{{A}}B",
				"C": "C{{A}}C",
				"D": "D{{A}}{{B}}{{C}}D",
			},
			expected: i18n.Table{
				"A": "A",
				"B": "BAB",
				"C": "CAC",
				"D": "DABABCACD",
			},
		},
		{
			name: "within pluralizations",
			raw: i18n.Table{
				"A": "bar",
				"B": map[string]any{"1": "1 {{A}} bar", "2": "2 {{A}} bar", "n": "n {{A}} bar"},
			},
			expected: i18n.Table{
				"A": "bar",
				"B": map[string]any{"1": "1 bar bar", "2": "2 bar bar", "n": "n bar bar"},
			},
		},
		{
			name: "within subkeys",
			raw: i18n.Table{
				"A": "bar",
				"B": map[string]any{"hi": "1 {{A}} bar", "ho": "2 {{A}} bar"},
			},
			expected: i18n.Table{
				"A": "bar",
				"B": map[string]any{"hi": "1 bar bar", "ho": "2 bar bar"},
			},
		},
		{
			name: "targeting subkeys",
			raw: i18n.Table{
				"A": map[string]any{"b": "bar"},
				"B": "Foo {{A[b]}}",
				"C": "Foo {{A[b]}}",
			},
			expected: i18n.Table{
				"A": map[string]any{"b": "bar"},
				"B": "Foo bar",
				"C": "Foo bar",
			},
		},
		{
			name: "pluralized forms",
			raw: i18n.Table{
				"A": map[string]any{"1": "1 bar", "n": "{n} bars"},
				"B": map[string]any{"1": "1 Foo {{A[1]}}", "n": "{n} Foo {{A[n]}}"},
			},
			expected: i18n.Table{
				"A": map[string]any{"1": "1 bar", "n": "{n} bars"},
				"B": map[string]any{"1": "1 Foo 1 bar", "n": "{n} Foo {n} bars"},
			},
		},
		{
			name: "subkey ignored for plain string target",
			raw: i18n.Table{
				"A": "bar",
				"B": "Foo {{A[b]}}",
				"C": "Foo {{A[b]}}",
			},
			expected: i18n.Table{
				"A": "bar",
				"B": "Foo bar",
				"C": "Foo bar",
			},
		},
		{
			name: "invalid entries copied unchanged",
			raw: i18n.Table{
				"A": 42,
				"B": map[string]any{"x": true, "y": "{{C}}"},
				"C": "c",
			},
			expected: i18n.Table{
				"A": 42,
				"B": map[string]any{"x": true, "y": "c"},
				"C": "c",
			},
		},
		{
			name:     "placeholders are left alone",
			raw:      i18n.Table{"A": "{name}", "B": "Hi {{A}} {n}"},
			expected: i18n.Table{"A": "{name}", "B": "Hi {name} {n}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := i18n.ResolveAliases(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveAliases_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	leaves := map[string]any{"hi": "{{A}}"}
	raw := i18n.Table{"A": "bar", "B": "{{A}}", "C": leaves}

	_, err := i18n.ResolveAliases(raw)
	require.NoError(t, err)
	assert.Equal(t, "{{A}}", raw["B"])
	assert.Equal(t, "{{A}}", leaves["hi"])
}

func TestResolveAliases_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     i18n.Table
		target  error
		ref     string
		message string
	}{
		{
			name:    "unknown alias",
			raw:     i18n.Table{"A": "{{B}}"},
			target:  i18n.ErrUnknownAlias,
			ref:     "B",
			message: `no translation for alias "B"`,
		},
		{
			name:    "alias to invalid entry",
			raw:     i18n.Table{"A": "{{B}}", "B": 7},
			target:  i18n.ErrUnknownAlias,
			ref:     "B",
			message: `no translation for alias "B"`,
		},
		{
			name:    "circular reference",
			raw:     i18n.Table{"A": "{{B}}", "B": "{{A}}"},
			target:  i18n.ErrCircularAlias,
			ref:     "B",
			message: `circular reference for "B" detected`,
		},
		{
			name:    "self reference",
			raw:     i18n.Table{"A": "x {{A}}"},
			target:  i18n.ErrCircularAlias,
			ref:     "A",
			message: `circular reference for "A" detected`,
		},
		{
			name: "aliasing an object",
			raw: i18n.Table{
				"A": map[string]any{"1": "one"},
				"B": "{{A}}",
			},
			target:  i18n.ErrAliasObject,
			ref:     "A",
			message: `cannot alias object "A"`,
		},
		{
			name: "unknown subkey",
			raw: i18n.Table{
				"A": map[string]any{"b": "bar"},
				"B": "Foo {{A[invalidSubkey]}}",
			},
			target:  i18n.ErrUnknownAliasSubkey,
			ref:     "A[invalidSubkey]",
			message: `no translation for alias "A[invalidSubkey]"`,
		},
		{
			name: "circular reference through subkey",
			raw: i18n.Table{
				"A": map[string]any{"a": "{{B}}"},
				"B": "Foo {{A[a]}}",
			},
			target:  i18n.ErrCircularAlias,
			ref:     "B",
			message: `circular reference for "B" detected`,
		},
		{
			name: "circular reference between subkeys",
			raw: i18n.Table{
				"A": map[string]any{"a": "{{B[b]}}"},
				"B": map[string]any{"b": "{{A[a]}}"},
			},
			target:  i18n.ErrCircularAlias,
			ref:     "B[b]",
			message: `circular reference for "B[b]" detected`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := i18n.ResolveAliases(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.target)
			assert.EqualError(t, err, tt.message)

			var aliasErr *i18n.AliasError
			require.True(t, errors.As(err, &aliasErr))
			assert.Equal(t, tt.ref, aliasErr.Ref)
		})
	}
}
