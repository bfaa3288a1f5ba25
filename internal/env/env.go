package env

import (
	"os"
	"path/filepath"
)

const (
	appName = "period"

	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	PERIOD_CONFIG_PATH string

	PERIOD_LOG_PATH string
)

func init() {
	Load()
}

// Load resolves the config and log paths from the environment.
// Follow https://specifications.freedesktop.org/basedir-spec/latest/
func Load() {
	PERIOD_CONFIG_PATH = os.Getenv("PERIOD_CONFIG_PATH")
	if PERIOD_CONFIG_PATH == "" {
		PERIOD_CONFIG_PATH = filepath.Join(baseDir("XDG_CONFIG_HOME", defaultXDGConfigDirname), appName, "config.yaml")
	}

	PERIOD_LOG_PATH = os.Getenv("PERIOD_LOG_PATH")
	if PERIOD_LOG_PATH == "" {
		PERIOD_LOG_PATH = filepath.Join(baseDir("XDG_DATA_HOME", defaultXDGDataDirname), appName, "debug.log")
	}
}

func baseDir(key, fallback string) string {
	if dir := os.Getenv(key); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// no home directory: fall back to the working directory
		return fallback
	}
	return filepath.Join(homeDir, fallback)
}
