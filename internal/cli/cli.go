package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/babarot/period/internal/config"
	"github.com/babarot/period/internal/env"
	"github.com/babarot/period/internal/utils/debug"
	"github.com/babarot/period/internal/utils/log"
	"github.com/babarot/period/period"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

type Option struct {
	File    string `short:"f" long:"file" description:"Read one duration per line from a file (\"-\" for stdin)"`
	Output  string `short:"o" long:"output" description:"Output format (default: from config)" choice:"text" choice:"sql" choice:"json" choice:"table" choice:"seconds"`
	Sum     bool   `short:"s" long:"sum" description:"Print the sum of all durations"`
	Strict  bool   `long:"strict" description:"Fail on unknown units"`
	Lenient bool   `long:"lenient" description:"Ignore tokens with unknown units"`
	Compat  bool   `long:"compat" description:"Parse with Go-style syntax (e.g. 1h30m, \"3 days\")"`
	Config  string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

var ErrConflictingModes = errors.New("--strict and --lenient are mutually exclusive")

type CLI struct {
	version Version
	option  Option
	config  config.Config

	stdin  io.Reader
	stdout io.Writer
}

var runID = sync.OnceValue(func() string {
	return xid.New().String()
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] [durations...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	setupLogger(cfg.Logging)
	defer slog.Debug("main function finished")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

// setupLogger makes slog write to the rotating log file when logging is
// enabled and drops everything otherwise
func setupLogger(cfg config.LoggingConfig) {
	if !cfg.Enabled {
		slog.SetDefault(log.Discard())
		return
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.New(
		log.UseLevel(level),
		log.UseReportCaller(level == log.DebugLevel),
		log.UseOutputFunc(func() (io.Writer, error) {
			return log.NewRotateWriter(env.PERIOD_LOG_PATH, cfg.Rotation)
		}),
		log.AsDefault(),
	)
	slog.SetDefault(logger.With("run_id", runID()))
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(c.stdout, c.version.Print())
		return nil

	case c.option.Meta.Debug == "live":
		return debug.Logs(c.stdout, env.PERIOD_LOG_PATH, c.config.Logging, true)

	case c.option.Meta.Debug == "full":
		return debug.Logs(c.stdout, env.PERIOD_LOG_PATH, c.config.Logging, false)

	default:
		return c.Parse(args)
	}
}

// parseOptions builds the period options from the config, then applies
// command line overrides
func (c CLI) parseOptions() ([]period.Option, error) {
	if c.option.Strict && c.option.Lenient {
		return nil, ErrConflictingModes
	}

	opts, err := c.config.Options()
	if err != nil {
		return nil, err
	}

	switch {
	case c.option.Strict:
		opts = append(opts, period.WithMode(period.Strict))
	case c.option.Lenient:
		opts = append(opts, period.WithMode(period.Lenient))
	}
	return append(opts, period.WithLogger(slog.Default())), nil
}

func (c CLI) outputFormat() string {
	if c.option.Output != "" {
		return c.option.Output
	}
	return c.config.Output.Format
}
