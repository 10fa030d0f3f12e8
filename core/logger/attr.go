package logger

import (
	"log/slog"
	"strconv"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Translation
// ============================================================================

// TranslationKey creates an attribute for a lookup key.
func TranslationKey(key string) slog.Attr {
	return slog.String("translation_key", key)
}

// Selector creates an attribute for a plural or subkey selector.
// Returns empty Attr when no selector was used.
func Selector(sel string) slog.Attr {
	if sel == "" {
		return slog.Attr{}
	}
	return slog.String("selector", sel)
}

// Language creates an attribute for a language tag.
func Language(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("language", tag)
}

// File creates an attribute for a source file name.
func File(name string) slog.Attr {
	return slog.String("file", name)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
