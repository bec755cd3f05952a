package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so no stray .env leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "degrees.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  root: /srv/data
  directory: small
search:
  max_explored: 5000
  timeout: 2s
log:
  level: debug
`), 0o600))
	t.Setenv("DEGREES_DATA_DIRECTORY", "large")
	t.Setenv("DEGREES_CACHE_SIZE", "0")
	t.Setenv("DEGREES_TELEMETRY_TRACING", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.Data.Root)
	assert.Equal(t, "large", cfg.Data.Directory)
	assert.Equal(t, 5000, cfg.Search.MaxExplored)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Telemetry.Tracing)
}

func TestLoad_DotenvDoesNotOverrideEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DEGREES_SEARCH_MAX_DEPTH=4\nDEGREES_LOG_FORMAT=json\n"), 0o600))
	t.Setenv("DEGREES_LOG_FORMAT", "console")
	t.Cleanup(func() { _ = os.Unsetenv("DEGREES_SEARCH_MAX_DEPTH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Search.MaxDepth)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("search:\n  max_hops: 3\n"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)

	t.Setenv("DEGREES_SEARCH_TIMEOUT", "soon")
	_, err = Load("")
	require.ErrorIs(t, err, ErrInvalidEnv)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative explored": func(c *Config) { c.Search.MaxExplored = -1 },
		"negative cache":    func(c *Config) { c.Cache.Size = -5 },
		"unknown level":     func(c *Config) { c.Log.Level = "loud" },
		"unknown format":    func(c *Config) { c.Log.Format = "xml" },
		"no data root":      func(c *Config) { c.Data.Root = "" },
		"bad addr":          func(c *Config) { c.Server.Addr = "localhost" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
	require.NoError(t, Default().Validate())
}

func TestApplyEnv_BadInt(t *testing.T) {
	cfg := Default()
	err := applyEnv(&cfg, func(k string) (string, bool) {
		if k == EnvPrefix+"CACHE_SIZE" {
			return "lots", true
		}
		return "", false
	})
	require.ErrorIs(t, err, ErrInvalidEnv)
}
