package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/tasker/adapter/cli"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/commands"
	"github.com/felixgeelhaar/tasker/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	t.Run("file flag sets json path", func(t *testing.T) {
		cfg := config.Default()
		applyFlags(cfg, cli.Options{StoreFile: "mine.json", Verbose: true})

		assert.Equal(t, "mine.json", cfg.Store.Path)
		assert.Equal(t, config.DefaultSQLitePath, cfg.Store.SQLitePath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("file flag follows sqlite driver", func(t *testing.T) {
		cfg := config.Default()
		applyFlags(cfg, cli.Options{Driver: "sqlite", StoreFile: "mine.db"})

		assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
		assert.Equal(t, "mine.db", cfg.Store.SQLitePath)
		assert.Equal(t, config.DefaultStorePath, cfg.Store.Path)
	})

	t.Run("no flags keep config", func(t *testing.T) {
		cfg := config.Default()
		applyFlags(cfg, cli.Options{})
		assert.Equal(t, config.Default(), cfg)
	})
}

func TestBootstrap(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKER_STORE_DRIVER", "")
	t.Setenv("TASKER_STORE_PATH", "")
	t.Setenv("TASKER_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "tasks.json")

	cliApp, err := bootstrap(context.Background(), cli.Options{StoreFile: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cliApp.Close() })

	result, err := cliApp.AddTaskHandler.Handle(context.Background(), commands.AddTaskCommand{Description: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TaskID)
	assert.FileExists(t, path)
}

func TestBootstrap_InvalidDriver(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := bootstrap(context.Background(), cli.Options{Driver: "postgres"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
