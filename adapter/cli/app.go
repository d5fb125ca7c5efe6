package cli

import (
	"github.com/felixgeelhaar/tasker/internal/tracker/application/commands"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Task Command Handlers
	AddTaskHandler    *commands.AddTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler

	// Task Query Handlers
	ListTasksHandler   *queries.ListTasksHandler
	GetTaskHandler     *queries.GetTaskHandler
	ExportTasksHandler *queries.ExportTasksHandler

	closer func() error
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	addTaskHandler *commands.AddTaskHandler,
	updateTaskHandler *commands.UpdateTaskHandler,
	deleteTaskHandler *commands.DeleteTaskHandler,
	listTasksHandler *queries.ListTasksHandler,
	getTaskHandler *queries.GetTaskHandler,
	exportTasksHandler *queries.ExportTasksHandler,
) *App {
	return &App{
		AddTaskHandler:     addTaskHandler,
		UpdateTaskHandler:  updateTaskHandler,
		DeleteTaskHandler:  deleteTaskHandler,
		ListTasksHandler:   listTasksHandler,
		GetTaskHandler:     getTaskHandler,
		ExportTasksHandler: exportTasksHandler,
	}
}

// SetCloser registers a function that releases the app's resources.
func (a *App) SetCloser(fn func() error) {
	a.closer = fn
}

// Close releases the app's resources.
func (a *App) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	fn := a.closer
	a.closer = nil
	return fn()
}

// app is the global CLI application instance.
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
