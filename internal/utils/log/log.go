package log

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// New creates a slog logger backed by a charmbracelet/log handler
func New(opts ...Option) *slog.Logger {
	o := DefaultOptions()
	o.Apply(opts...)

	if o.OutputFunc != nil {
		if w, err := o.OutputFunc(); err == nil {
			o.Writer = w
		}
	}

	handler := charmlog.NewWithOptions(o.Writer, o.Options)
	handler.SetStyles(o.Styles)

	logger := slog.New(handler)
	if o.Default {
		charmlog.SetDefault(handler)
		slog.SetDefault(logger)
	}
	return logger
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return New(UseOutput(io.Discard), UseLevel(ErrorLevel))
}
