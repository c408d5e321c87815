package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T, content string) *Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	return cfg
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.False(t, cfg.Exists("any", "thing"))
}

func TestTypedAccessors(t *testing.T) {
	cfg := loadTestConfig(t, `
[api]
server_ip = 0.0.0.0
server_port = 20001

[authorization]
allow_dev_bypass_bool = False
request_validity_int = 60
`)

	assert.Equal(t, "0.0.0.0", cfg.String("api", "server_ip"))
	assert.Equal(t, 20001, cfg.Int("api", "server_port"))
	assert.Equal(t, 60, cfg.Int("authorization", "request_validity_int"))
	assert.False(t, cfg.Bool("authorization", "allow_dev_bypass_bool"))
	assert.True(t, cfg.Exists("api", "server_ip"))
	assert.False(t, cfg.Exists("api", "missing"))
	assert.Equal(t, "", cfg.String("nope", "nothing"))
	assert.Equal(t, 0, cfg.Int("nope", "nothing"))
}

func TestRetype(t *testing.T) {
	t.Run("bool suffix", func(t *testing.T) {
		v, err := Retype("enable_bool", "True")
		require.NoError(t, err)
		assert.Equal(t, true, v)
		v, err = Retype("enable_bool", "nonsense")
		require.NoError(t, err)
		assert.Equal(t, false, v)
	})

	t.Run("int suffix", func(t *testing.T) {
		v, err := Retype("validity_int", "60")
		require.NoError(t, err)
		assert.Equal(t, 60, v)
		_, err = Retype("validity_int", "sixty")
		assert.Error(t, err)
	})

	t.Run("float suffix", func(t *testing.T) {
		v, err := Retype("ratio_float", "0.5")
		require.NoError(t, err)
		assert.Equal(t, 0.5, v)
	})

	t.Run("port suffix validates range", func(t *testing.T) {
		v, err := Retype("server_port", "20001")
		require.NoError(t, err)
		assert.Equal(t, 20001, v)
		_, err = Retype("server_port", "99999")
		assert.Error(t, err)
	})

	t.Run("ip suffix validates address", func(t *testing.T) {
		_, err := Retype("server_ip", "0.0.0.0")
		require.NoError(t, err)
		_, err = Retype("server_ip", "not-an-ip")
		assert.Error(t, err)
	})

	t.Run("no suffix stays a string", func(t *testing.T) {
		v, err := Retype("password", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "hunter2", v)
	})
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	cfg, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, cfg.Set("api", "server_port", "20002"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20002, reloaded.Int("api", "server_port"))
}

func TestSetOptions(t *testing.T) {
	cfg := loadTestConfig(t, `
[api]
server_port = 20001
`)

	changes, err := cfg.SetOptions(map[string]map[string]string{
		"api":    {"server_port": "20002", "server_ip": "127.0.0.1"},
		"extras": {"comment": "hello"},
	})
	require.NoError(t, err)

	assert.Equal(t, Updated, changes["api"]["server_port"])
	assert.Equal(t, Added, changes["api"]["server_ip"])
	assert.Equal(t, Added, changes["extras"]["comment"])

	assert.Equal(t, 20002, cfg.Int("api", "server_port"))
	assert.Equal(t, "hello", cfg.String("extras", "comment"))
}

func TestEnsureDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.ini"))
	require.NoError(t, err)

	require.NoError(t, EnsureDefaults(cfg, dir))

	assert.Equal(t, "1.0.5", cfg.String("public", "version"))
	assert.NotEmpty(t, cfg.String("public", "uuid"))
	assert.NotEmpty(t, cfg.String("authentication", "password"))
	assert.NotEmpty(t, cfg.String("authentication", "token_key"))
	assert.NotEmpty(t, cfg.String("authorization", "root_password"))
	assert.Equal(t, 3600, cfg.Int("authentication", "token_validity_int"))
	assert.Equal(t, 60, cfg.Int("authorization", "request_validity_int"))
	assert.Equal(t, 20001, cfg.Int("api", "server_port"))
	assert.Equal(t, 60, cfg.Int("tests", "process_deadline_terminating_int"))
	assert.Equal(t, 600, cfg.Int("cleaner", "nonces_int"))

	// Secrets survive a second run untouched.
	password := cfg.String("authentication", "password")
	require.NoError(t, EnsureDefaults(cfg, dir))
	assert.Equal(t, password, cfg.String("authentication", "password"))
}

func TestAllSections(t *testing.T) {
	cfg := loadTestConfig(t, `
[public]
version = 1.0.5

[api]
server_port = 20001
`)

	all := cfg.AllSections()
	assert.Equal(t, "1.0.5", all["public"]["version"])
	assert.Equal(t, "20001", all["api"]["server_port"])
	assert.NotContains(t, all, "DEFAULT")
}
