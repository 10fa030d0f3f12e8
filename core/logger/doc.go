// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/translate/core/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Debug("translation missing",
//		logger.TranslationKey("greeting"),
//		logger.Selector("few"),
//	)
//
// Preset configurations are available for common environments:
//
//	devLogger := logger.New(logger.WithDevelopment("translate"))   // colorized text, debug
//	prodLogger := logger.New(logger.WithProduction("translate"))   // JSON, info
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops,
// so they can be passed unconditionally:
//
//	log.Error("failed to load catalog", logger.Error(err), logger.File(name))
//	log.Info("catalog loaded", logger.Language("pl"), logger.Count("keys", 42))
//
// # Testing
//
// Direct output to a buffer to assert on log lines:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())
//
// Discard returns a logger that drops everything.
package logger
