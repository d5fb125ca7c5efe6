// Package cli is the tasker command-line front end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/tasker/pkg/observability"
	"github.com/spf13/cobra"
)

// ErrNotInitialized is returned by commands run before the app is set up.
var ErrNotInitialized = errors.New("application not initialized")

// Options are the global flags that shape how the app is built.
type Options struct {
	ConfigFile string
	StoreFile  string
	Driver     string
	Verbose    bool
}

// Bootstrapper builds the App from the global flags. It runs once, before
// the first command that needs the task store.
type Bootstrapper func(ctx context.Context, opts Options) (*App, error)

// skipBootstrap marks commands that run without the task store.
const skipBootstrap = "skip-bootstrap"

var (
	opts      Options
	logger    *slog.Logger
	bootstrap Bootstrapper

	// run tracks the command in flight so Execute can report failures
	// that skip PersistentPostRun.
	run struct {
		ctx   context.Context
		timer *observability.Timer
	}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tasker",
	Short: "tasker - a personal task list",
	Long: `tasker keeps a list of short tasks with a status in a local file.

Statuses are NotDone, InProgress and Done. Input is case-insensitive and
ignores spaces, dashes and underscores, so "in progress" and "IN_PROGRESS"
both work.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = observability.NewCommandContext(ctx, cmd.CommandPath())
		cmd.SetContext(ctx)
		run.ctx = ctx
		run.timer = observability.StartTimer(cmd.CommandPath()).WithLogger(logger)

		logger.DebugContext(ctx, "command start", "args", len(args))

		if app != nil || bootstrap == nil || cmd.Annotations[skipBootstrap] == "true" {
			return nil
		}
		a, err := bootstrap(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		SetApp(a)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopRun(nil)
	},
}

// stopRun logs how the command in flight ended. It is a no-op once stopped.
func stopRun(err error) {
	if run.timer == nil {
		return
	}
	run.timer.Stop(run.ctx, err)
	run.ctx, run.timer = nil, nil
}

// Execute runs the root command and releases the app afterwards. The
// returned error decides the exit code.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	stopRun(err)
	if closeErr := GetApp().Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file path (default tasker.toml or .tasker.toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.StoreFile, "file", "f", "", "task list file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver: file, sqlite or memory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
}

// AddCommand adds commands to the root command.
func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// SetBootstrapper sets the function that builds the App on first use.
func SetBootstrapper(b Bootstrapper) {
	bootstrap = b
}
