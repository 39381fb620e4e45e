package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvDataFile    = "LIBRARY_FILE"
	EnvLibraryName = "LIBRARY_NAME"
	EnvLogLevel    = "LIBRARY_LOG_LEVEL"
	EnvLogFormat   = "LIBRARY_LOG_FORMAT"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var (
	// ErrEmptyDataFile is returned when no input file is configured.
	ErrEmptyDataFile = errors.New("data file must not be empty")

	// ErrUnknownLogLevel is returned for a log level other than debug, info, warn or error.
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrUnknownLogFormat is returned for a log format other than text or json.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// Config holds the configuration of one libraryctl run.
type Config struct {
	DataFile    string
	LibraryName string
	LogLevel    string
	LogFormat   string
	ShowJournal bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		DataFile:    "Library00.csv",
		LibraryName: "CSUMB",
		LogLevel:    "warn",
		LogFormat:   LogFormatText,
	}
}

// FromEnv returns Default overridden by the LIBRARY_* environment variables.
func FromEnv() Config {
	return Default().WithLookup(os.LookupEnv)
}

// WithLookup overrides c with every variable lookup finds.
func (c Config) WithLookup(lookup func(key string) (string, bool)) Config {
	if v, ok := lookup(EnvDataFile); ok && v != "" {
		c.DataFile = v
	}

	if v, ok := lookup(EnvLibraryName); ok && v != "" {
		c.LibraryName = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}

	return c
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DataFile) == "" {
		errs = append(errs, ErrEmptyDataFile)
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.LogFormat))
	}

	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}

	return level, nil
}
