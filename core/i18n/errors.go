package i18n

import (
	"errors"
	"fmt"
)

// Alias resolution failures. They indicate an authoring error in the
// translation source and are returned wrapped in *AliasError.
var (
	// ErrUnknownAlias indicates a reference to a key that is absent or not a valid entry.
	ErrUnknownAlias = errors.New("no translation for alias")

	// ErrUnknownAliasSubkey indicates a {{Key[sub]}} reference to a selector the leaf table lacks.
	ErrUnknownAliasSubkey = errors.New("no translation for alias subkey")

	// ErrCircularAlias indicates a direct or indirect reference cycle.
	ErrCircularAlias = errors.New("circular alias reference")

	// ErrAliasObject indicates a {{Key}} reference to a leaf table; only strings can be inlined.
	ErrAliasObject = errors.New("cannot alias object")
)

// AliasError reports which reference broke alias resolution.
// Ref is "Key" or "Key[sub]".
type AliasError struct {
	Ref string
	Err error
}

// Error implements the error interface.
func (e *AliasError) Error() string {
	switch {
	case errors.Is(e.Err, ErrCircularAlias):
		return fmt.Sprintf("circular reference for %q detected", e.Ref)
	case errors.Is(e.Err, ErrUnknownAlias), errors.Is(e.Err, ErrUnknownAliasSubkey):
		return fmt.Sprintf("no translation for alias %q", e.Ref)
	default:
		return fmt.Sprintf("%v %q", e.Err, e.Ref)
	}
}

// Unwrap returns the underlying sentinel error.
func (e *AliasError) Unwrap() error {
	return e.Err
}
