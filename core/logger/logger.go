package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type config struct {
	level       slog.Leveler
	json        bool
	color       bool
	output      io.Writer
	attrs       []slog.Attr
	handlerOpts *slog.HandlerOptions
}

// Option configures a logger created by New.
type Option func(*config)

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		if level != nil {
			c.level = level
		}
	}
}

// WithJSONFormatter switches the output to JSON.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
		c.color = false
	}
}

// WithTextFormatter switches the output to logfmt-style text. This is the default.
func WithTextFormatter() Option {
	return func(c *config) {
		c.json = false
		c.color = false
	}
}

// WithColorFormatter switches the output to colorized text for terminals.
func WithColorFormatter() Option {
	return func(c *config) {
		c.json = false
		c.color = true
	}
}

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithHandlerOptions sets the handler options. The level set by WithLevel
// takes precedence over opts.Level.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		c.handlerOpts = opts
	}
}

// WithDevelopment configures colorized text output at debug level.
func WithDevelopment(service string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.json = false
		c.color = true
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.json = true
		c.color = false
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "production"))
	}
}

// New creates a slog.Logger.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	var ho slog.HandlerOptions
	if c.handlerOpts != nil {
		ho = *c.handlerOpts
	}
	ho.Level = c.level

	var h slog.Handler
	switch {
	case c.json:
		h = slog.NewJSONHandler(c.output, &ho)
	case c.color:
		h = tint.NewHandler(c.output, &tint.Options{
			AddSource:   ho.AddSource,
			Level:       ho.Level,
			ReplaceAttr: ho.ReplaceAttr,
			TimeFormat:  time.Kitchen,
		})
	default:
		h = slog.NewTextHandler(c.output, &ho)
	}
	if len(c.attrs) > 0 {
		h = h.WithAttrs(c.attrs)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
