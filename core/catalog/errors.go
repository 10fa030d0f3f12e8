package catalog

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported translation file format")

	// ErrInvalidTable indicates a document whose root is not a mapping.
	ErrInvalidTable = errors.New("translation file root must be a mapping")

	// ErrUnknownLanguage indicates a language the catalog has no translator for,
	// or a file name without a valid language tag.
	ErrUnknownLanguage = errors.New("unknown language")
)
