package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primst/config"
	"github.com/katalvlaran/primst/frontier"
	"github.com/katalvlaran/primst/report"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "primst.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())

	cfg, err = config.Load(writeFile(t, `
frontier: btree
verify: true
markers:
  unreachable: INF
log:
  format: json
metrics:
  textfile: /tmp/primst.prom
`))
	require.NoError(t, err)
	assert.Equal(t, "btree", cfg.Frontier)
	assert.True(t, cfg.Verify)
	assert.Equal(t, report.Markers{Root: "NIL", Unreachable: "INF"}, cfg.Markers, "unset keys keep defaults")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
	assert.Equal(t, "/tmp/primst.prom", cfg.Metrics.Textfile)
	require.NoError(t, cfg.Validate())

	cfg, err = config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "frontier: heap\nworkers: 4\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "frontier: [heap\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	mod := func(fn func(*config.Config)) config.Config {
		c := config.Default()
		fn(&c)
		return c
	}
	tests := []struct {
		name string
		cfg  config.Config
		want error
	}{
		{"frontier", mod(func(c *config.Config) { c.Frontier = "pairing" }), frontier.ErrUnknownKind},
		{"markers", mod(func(c *config.Config) { c.Markers.Root = "-1" }), report.ErrAmbiguousMarkers},
		{"level", mod(func(c *config.Config) { c.Log.Level = "loud" }), config.ErrInvalidLogLevel},
		{"format", mod(func(c *config.Config) { c.Log.Format = "xml" }), config.ErrInvalidLogFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, strings.HasPrefix(err.Error(), "config: "), err.Error())
		})
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = config.LogConfig{Level: "info", Format: "xml"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
	_, err = config.LogConfig{Level: "nope", Format: "text"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}
