package cli

import (
	"github.com/alexanderramin/triagelab/internal/config"
	"github.com/alexanderramin/triagelab/internal/engine"
	"github.com/spf13/cobra"
)

// App holds the wiring the CLI commands need. OpenEngine is provided by
// main and performs the heavyweight setup (content pack load, database
// open) only for commands that actually run sessions.
type App struct {
	Cfg config.Config

	// OpenEngine loads the content pack at packPath (empty = configured
	// default), opens the session store and returns the wired phase
	// controller plus a cleanup func.
	OpenEngine func(packPath string) (*engine.Controller, func(), error)

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "triagelab" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "triagelab",
		Short: "Clinical-triage training study runner",
	}

	root.AddCommand(
		newRunCmd(app),
		newValidateCmd(app),
		newWithdrawCmd(app),
		newVersionCmd(),
	)

	return root
}
