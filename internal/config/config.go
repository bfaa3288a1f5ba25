package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/babarot/period/internal/env"
	"github.com/babarot/period/period"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Parse   ParseConfig   `yaml:"parse"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type ParseConfig struct {
	Mode        string           `yaml:"mode" validate:"required,oneof=lenient strict"`
	DefaultUnit string           `yaml:"default_unit" validate:"required,unitLiteral"`
	Units       map[string]int64 `yaml:"units" validate:"dive,keys,unitLiteral,endkeys,gt=0"`
}

type OutputConfig struct {
	Format      string `yaml:"format" validate:"required,oneof=text sql json table seconds"`
	Color       string `yaml:"color" validate:"required,oneof=auto always never"`
	Colorscheme string `yaml:"colorscheme"`
}

type LoggingConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Level    string         `yaml:"level" validate:"required,oneof=debug info warn error"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize  string `yaml:"max_size" validate:"validSize"`
	MaxFiles int    `yaml:"max_files" validate:"gte=0"`
}

// Units returns the built-in unit table merged with the configured one.
func (c Config) Units() (period.Units, error) {
	return period.DefaultUnits().Merge(c.Parse.Units)
}

// Options translates the parse section into period options.
func (c Config) Options() ([]period.Option, error) {
	units, err := c.Units()
	if err != nil {
		return nil, err
	}
	mode, ok := period.ParseMode(c.Parse.Mode)
	if !ok {
		return nil, fmt.Errorf("unknown parse mode %q", c.Parse.Mode)
	}
	bare, ok := units.Lookup(c.Parse.DefaultUnit)
	if !ok {
		return nil, fmt.Errorf("default_unit %q is not a known unit", c.Parse.DefaultUnit)
	}
	return []period.Option{
		period.WithUnits(units),
		period.WithMode(mode),
		period.WithDefaultMultiplier(bare),
	}, nil
}

type configError struct {
	configPath string
	err        error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't read the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.PERIOD_CONFIG_PATH,
		defaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (e configError) Unwrap() error {
	return e.err
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

func defaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func readConfigFile(path string) (Config, error) {
	cfg := *NewDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{configPath: path, err: err}
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, err := range verrs {
				return cfg, fmt.Errorf("validation error: Field %s, %q is invalid", err.Namespace(), fmt.Sprint(err.Value()))
			}
		}
		return cfg, err
	}

	// validator only checks the shape of the units, not conflicts with built-ins
	if _, err := cfg.Options(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func initValidator() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("unitLiteral", validateUnitLiteral)
}

// Parse reads the config at path. An empty path means env.PERIOD_CONFIG_PATH,
// which may be missing, in which case the defaults are returned.
func Parse(path string) (Config, error) {
	initValidator()

	configPath := path
	if configPath == "" {
		configPath = env.PERIOD_CONFIG_PATH
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "config-file", configPath)
			return *NewDefaultConfig(), nil
		}
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err := readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}
