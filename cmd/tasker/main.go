package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/tasker/adapter/cli"
	"github.com/felixgeelhaar/tasker/adapter/cli/task"
	"github.com/felixgeelhaar/tasker/internal/app"
	"github.com/felixgeelhaar/tasker/pkg/config"
	"github.com/felixgeelhaar/tasker/pkg/observability"
)

func main() {
	// Setup logger; replaced once the config is known
	cli.SetLogger(observability.NewLogger(observability.DefaultLogConfig()))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cli.SetBootstrapper(bootstrap)

	// Register commands
	cli.AddCommand(task.Commands()...)

	// Execute CLI
	if err := cli.Execute(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

// bootstrap loads the configuration, applies the global flags and builds
// the CLI app on top of the container.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.App, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, opts)

	logger := observability.NewLogger(observability.LogConfig{
		Level:          observability.LogLevel(cfg.LogLevel),
		Format:         observability.LogFormat(cfg.LogFormat),
		Output:         os.Stderr,
		AddSource:      cfg.IsDevelopment(),
		ServiceVersion: cli.Version,
	})
	cli.SetLogger(logger)

	if cfg.ConfigFile != "" {
		logger.DebugContext(ctx, "config loaded", "file", cfg.ConfigFile)
	}

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	cliApp := cli.NewApp(
		container.AddTaskHandler,
		container.UpdateTaskHandler,
		container.DeleteTaskHandler,
		container.ListTasksHandler,
		container.GetTaskHandler,
		container.ExportTasksHandler,
	)
	cliApp.SetCloser(container.Close)
	return cliApp, nil
}

// applyFlags lets command-line flags override every other config source.
func applyFlags(cfg *config.Config, opts cli.Options) {
	if opts.Driver != "" {
		cfg.Store.Driver = opts.Driver
	}
	if opts.StoreFile != "" {
		if cfg.Store.Driver == config.DriverSQLite {
			cfg.Store.SQLitePath = opts.StoreFile
		} else {
			cfg.Store.Path = opts.StoreFile
		}
	}
	if opts.Verbose {
		cfg.LogLevel = string(observability.LogLevelDebug)
	}
}
