package period

import (
	"io"
	"log/slog"
)

// Mode decides what happens to tokens whose unit literal is not in the unit table.
type Mode int

const (
	// Lenient drops unknown tokens silently.
	Lenient Mode = iota
	// Strict fails the parse with a *ParseError of kind UnknownUnit.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	default:
		return "lenient"
	}
}

// ParseMode converts "strict" or "lenient" into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "strict":
		return Strict, true
	case "lenient", "":
		return Lenient, true
	default:
		return Lenient, false
	}
}

type options struct {
	mode        Mode
	units       Units
	bareDefault int64
	logger      *slog.Logger
}

func defaultOptions() *options {
	return &options{
		mode:        Lenient,
		units:       defaultUnits,
		bareDefault: Minute,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

type Option func(*options)

func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithUnits replaces the unit table. A nil table keeps the default one.
func WithUnits(u Units) Option {
	return func(o *options) {
		if u != nil {
			o.units = u
		}
	}
}

// WithDefaultMultiplier sets the multiplier of a number without a unit
// literal. It is Minute unless overridden.
func WithDefaultMultiplier(m int64) Option {
	return func(o *options) {
		if m > 0 {
			o.bareDefault = m
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
