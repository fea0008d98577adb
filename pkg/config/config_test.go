package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-steen/reminder-tracker/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", config.DefaultConfigFileName)

	cfg, err := config.LoadOrCreate(path)
	assert.Nil(err)
	assert.Equal(filepath.Join(dir, "nested", config.DefaultDBName), cfg.DBPath)
	assert.Equal(filepath.Join(dir, "nested", config.DefaultLogName), cfg.LogPath)
	assert.Equal("info", cfg.LogLevel)
	assert.Equal("reminders", cfg.StorageKey)

	data, err := os.ReadFile(path)
	assert.Nil(err)
	assert.Contains(string(data), "db_path")
	assert.Contains(string(data), config.DefaultDBName)

	// a second load reads the file back
	again, err := config.LoadOrCreate(path)
	assert.Nil(err)
	assert.Equal(cfg, again)
}

func TestLoadOrCreateReadsFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultConfigFileName)

	err := os.WriteFile(path, []byte("db_path = '/var/lib/reminders.db'\nlog_level = 'debug'\n"), 0o600)
	assert.Nil(err)

	cfg, err := config.LoadOrCreate(path)
	assert.Nil(err)
	assert.Equal("/var/lib/reminders.db", cfg.DBPath)
	assert.Equal(filepath.Join(dir, config.DefaultLogName), cfg.LogPath)
	assert.Equal("debug", cfg.LogLevel)
	assert.Equal("reminders", cfg.StorageKey)
}

func TestLoadOrCreateBadFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), config.DefaultConfigFileName)

	err := os.WriteFile(path, []byte("db_path = "), 0o600)
	assert.Nil(err)

	_, err = config.LoadOrCreate(path)
	assert.NotNil(err)
	assert.Contains(err.Error(), "error parsing config")
}
