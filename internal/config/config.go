// Package config resolves the settings of the check command from defaults,
// a YAML file, DOCVAL_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/mscheltienne/it-documentary-system-validator/internal/logging"
	"github.com/mscheltienne/it-documentary-system-validator/report"
	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

const (
	// DefaultPath is read from the working directory when no file is given.
	DefaultPath = ".docval.yaml"
	// EnvPrefix marks the environment variables that override the file.
	EnvPrefix = "DOCVAL_"

	maxConfigFileSize = 1024 * 1024
)

// Config holds every setting the check command honors. Keys are shared by
// the YAML file, the environment (upper-cased with EnvPrefix) and the flags.
type Config struct {
	Jobs                   int      `koanf:"jobs"`
	Output                 string   `koanf:"output"`
	Ignore                 []string `koanf:"ignore"`
	Format                 string   `koanf:"format"`
	Color                  string   `koanf:"color"`
	ArchiveMarker          string   `koanf:"archive_marker"`
	ArchiveCaseInsensitive bool     `koanf:"archive_case_insensitive"`
	UserCodeLength         int      `koanf:"usercode_length"`
	Forbidden              string   `koanf:"forbidden"`
	CheckSiblings          bool     `koanf:"check_siblings"`
	FailOnViolations       bool     `koanf:"fail_on_violations"`
	LogLevel               string   `koanf:"log_level"`
	LogFormat              string   `koanf:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Jobs:           1,
		Format:         string(report.FormatText),
		Color:          string(report.ColorAuto),
		ArchiveMarker:  validator.DefaultArchiveMarker,
		UserCodeLength: validator.DefaultUserCodeLength,
		Forbidden:      validator.DefaultForbiddenCharacters,
		LogLevel:       "warn",
		LogFormat:      logging.FormatConsole,
	}
}

// Load layers the configuration. An empty path reads DefaultPath if it
// exists; an explicit path must exist. overrides holds flag values keyed like
// the file and wins over everything else.
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	required := path != ""
	if !required {
		path = DefaultPath
	}
	content, err := readFile(path, required)
	if err != nil {
		return nil, err
	}
	if content != nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// DOCVAL_ARCHIVE_MARKER -> archive_marker
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("failed to apply flag %s: %w", key, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func readFile(path string, required bool) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config file %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// Validate checks the settings the engine and the report depend on.
func (c *Config) Validate() error {
	if err := c.Options(nil).Validate(); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	switch report.ColorMode(c.Color) {
	case report.ColorAuto, report.ColorAlways, report.ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.Color)
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (use 'console' or 'json')", c.LogFormat)
	}
	return nil
}

// Options converts the settings into engine options.
func (c *Config) Options(log *zap.Logger) validator.Options {
	opts := validator.DefaultOptions()
	opts.ArchiveMarker = c.ArchiveMarker
	opts.ArchiveCaseInsensitive = c.ArchiveCaseInsensitive
	opts.ForbiddenCharacters = c.Forbidden
	opts.UserCodeLength = c.UserCodeLength
	opts.CheckSiblings = c.CheckSiblings
	opts.Workers = c.Jobs
	opts.Logger = log
	return opts
}
