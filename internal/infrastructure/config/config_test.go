package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "books.db", cfg.Database.Path)
	assert.Equal(t, 10*time.Minute, cfg.Redis.QuantityTTL)
	assert.Equal(t, "bookstock.events", cfg.MQ.Exchange)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes())
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("BOOKSTOCK_REDIS_PORT", "6380")
	t.Setenv("BOOKSTOCK_DATABASE_PATH", ":memory:")

	cfg, err := LoadFile(writeConfig(t, "redis:\n  host: cache\n"))
	require.NoError(t, err)

	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, ":memory:", cfg.Database.Path)
}

func TestLoadFile_MySQLDSN(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
database:
  driver: mysql
  host: db
  port: 3306
  user: app
  password: secret
  dbname: bookstock
`))
	require.NoError(t, err)
	assert.Equal(t, "app:secret@tcp(db:3306)/bookstock?charset=utf8mb4&parseTime=true&loc=Local", cfg.Database.DSN())
}

func TestLoadFile_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown driver": "database:\n  driver: oracle\n",
		"mysql no host":  "database:\n  driver: mysql\n",
		"bad port":       "server:\n  port: 70000\n",
		"mq without url": "mq:\n  enabled: true\n",
		"zero upload":    "upload:\n  max_size_mb: 0\n",
	}
	for name, content := range cases {
		_, err := LoadFile(writeConfig(t, content))
		assert.Error(t, err, name)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
