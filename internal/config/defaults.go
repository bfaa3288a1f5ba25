package config

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Parse: ParseConfig{
			Mode:        "lenient",
			DefaultUnit: "m",
			Units:       map[string]int64{},
		},
		Output: OutputConfig{
			Format:      "text",
			Color:       "auto",
			Colorscheme: "monokai",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Rotation: RotationConfig{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}
