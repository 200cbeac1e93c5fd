// Package waggle is the service layer: commands and the TUI consume App
// instead of cherry-picking raw stores.
package waggle

import (
	"github.com/colonyops/waggle/internal/core/config"
	"github.com/colonyops/waggle/internal/data/db"
	"github.com/colonyops/waggle/internal/data/stores"
)

// App is the central entry point for all waggle operations.
type App struct {
	Tasks  *TaskService
	Prefs  *stores.PrefStore
	Config *config.Config
	DB     *db.DB
}

// NewApp constructs an App from explicit dependencies.
func NewApp(tasks *TaskService, prefs *stores.PrefStore, cfg *config.Config, database *db.DB) *App {
	return &App{
		Tasks:  tasks,
		Prefs:  prefs,
		Config: cfg,
		DB:     database,
	}
}
