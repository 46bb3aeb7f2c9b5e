package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh temp dir for the test.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.True(t, cfg.Library.ComputeKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Cache.Path)
	assert.Equal(t, "@daily", cfg.Cache.Vacuum)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := chdir(t)
	doc := "library:\n  options: FixedH RecMet\n  compute_key: false\ncache:\n  path: results.db\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inchi.yaml"), []byte(doc), 0o600))
	t.Setenv("INCHI_SERVER_ADDR", ":9090")

	cfg, err := Load("inchi.yaml")
	require.NoError(t, err)
	assert.Equal(t, "FixedH RecMet", cfg.Library.Options)
	assert.False(t, cfg.Library.ComputeKey)
	assert.Equal(t, "results.db", cfg.Cache.Path)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadJSON(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte(`{"server":{"addr":"localhost:1"}}`), 0o600))
	cfg, err := Load("c.json")
	require.NoError(t, err)
	assert.Equal(t, "localhost:1", cfg.Server.Addr)
}

func TestLoadRejects(t *testing.T) {
	dir := chdir(t)

	_, err := Load("../outside.yaml")
	assert.ErrorContains(t, err, "escapes working directory")

	_, err = Load("missing.yaml")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("server:\n  addr: nope\n"), 0o600))
	_, err = Load("bad.yaml")
	assert.ErrorContains(t, err, "server.addr")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvl.yaml"), []byte("log:\n  level: chatty\n"), 0o600))
	_, err = Load("lvl.yaml")
	assert.ErrorContains(t, err, "log.level")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cron.yaml"), []byte("cache:\n  vacuum: every tuesday\n"), 0o600))
	_, err = Load("cron.yaml")
	assert.ErrorContains(t, err, "cache.vacuum")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown", "k", "v")
	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, `"msg":"shown"`)
}

func TestSecurePath(t *testing.T) {
	dir := chdir(t)
	p, err := SecurePath("sub/../x.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x.yaml"), p)

	_, err = SecurePath("/etc/passwd")
	assert.Error(t, err)
}
