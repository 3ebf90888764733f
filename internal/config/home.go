package config

import (
	"os"
	"path/filepath"
)

const (
	// HomeEnv is the environment variable for the aocgen home directory
	HomeEnv = "AOCGEN_HOME"
	// DefaultHomeDir is the default directory name under user home
	DefaultHomeDir = ".aocgen"
	// LogsSubdir is the subdirectory for log files
	LogsSubdir = "logs"
)

// Home returns the aocgen home directory.
// It checks the AOCGEN_HOME environment variable first, then defaults to ~/.aocgen
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultHomeDir), nil
}

// LogsDir returns the log file directory (~/.aocgen/logs)
func LogsDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}
