// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primst/frontier"
	"github.com/katalvlaran/primst/report"
)

// Sentinel errors.
var (
	// ErrInvalidLogLevel indicates a log level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidLogFormat indicates a log format other than text or json.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full configuration of one primst invocation.
type Config struct {
	// Frontier names the priority structure: "heap" or "btree".
	Frontier string `yaml:"frontier"`

	// Verify cross-checks every result against the Kruskal reference.
	Verify bool `yaml:"verify"`

	// Markers are the literals for root and unreachable vertices.
	Markers report.Markers `yaml:"markers"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls Prometheus export.
type MetricsConfig struct {
	// Textfile, when set, receives the metrics in text exposition format
	// after the run.
	Textfile string `yaml:"textfile"`
}

// Default returns a working configuration.
func Default() Config {
	return Config{
		Frontier: string(frontier.KindHeap),
		Markers:  report.DefaultMarkers(),
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load reads the YAML file at path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// 1. Open file.
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	// 2. Strict decoder.
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	// 3. Decode; an empty document keeps the defaults.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("YAML error in config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := frontier.ParseKind(c.Frontier); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Markers.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Log.level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: format %q: %w", c.Log.Format, ErrInvalidLogFormat)
	}

	return nil
}

// level maps the configured name to a slog.Level.
func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("level %q: %w", l.Level, ErrInvalidLogLevel)
	}

	return lvl, nil
}

// NewLogger builds a logger writing to w with the configured level and format.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(l.Format) {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("format %q: %w", l.Format, ErrInvalidLogFormat)
	}
}
