package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/atlasshift"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlasshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())

	opt, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, atlasshift.DefaultOptions().Field, opt.Field)
	assert.Equal(t, int64(1), opt.Delta)
	assert.Equal(t, 2, opt.Indent)
	assert.True(t, opt.ASCIIOnly)
	assert.Equal(t, atlasshift.SeverityIgnore, opt.OnDuplicateKey)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, `
input: atlas.json
output: out/atlas.json
field: frame.x
delta: -4
indent: 0
ascii_only: false
json_driver: encoding/json
duplicate_keys: error
max_depth: 64
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "atlas.json", cfg.Input)
	assert.Equal(t, "out/atlas.json", cfg.Output)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched keys keep their defaults
	assert.Equal(t, "en", cfg.Language)

	opt, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, atlasshift.FieldPath{"frame", "x"}, opt.Field)
	assert.Equal(t, int64(-4), opt.Delta)
	assert.Equal(t, 0, opt.Indent)
	assert.False(t, opt.ASCIIOnly)
	assert.Equal(t, "encoding/json", opt.Driver)
	assert.Equal(t, atlasshift.SeverityError, opt.OnDuplicateKey)
	assert.Equal(t, 64, opt.MaxDepth)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "detla: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detla")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "delta: 5\nindent: 4\n")
	t.Setenv("ATLASSHIFT_DELTA", "7")
	t.Setenv("ATLASSHIFT_ASCII_ONLY", "false")
	t.Setenv("ATLASSHIFT_LOG_LEVEL", "info")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Delta)
	assert.Equal(t, 4, cfg.Indent)
	assert.False(t, cfg.ASCIIOnly)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("ATLASSHIFT_DELTA", "one")
	_, err := Load("")
	require.Error(t, err)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Output = ""
	cfg.Field = "a..b"
	cfg.Indent = -1
	cfg.JSONDriver = "simdjson"
	cfg.DuplicateKeys = "sometimes"
	cfg.Log.Format = "xml"
	cfg.Language = "not a tag"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"output path", "indent", "simdjson", "duplicate_keys", "language", "log.format"} {
		assert.Contains(t, err.Error(), want)
	}
}
