package cli

import (
	"github.com/ml4phys/lhcdata/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Fetch   service.FetchService
	History service.HistoryService

	// BaseURL is the mirror root dataset URLs are resolved against.
	BaseURL string

	// FetchAudit additionally receives fetch phase events when audit
	// logging is enabled. Nil otherwise.
	FetchAudit service.FetchObserver

	// IsInteractive reports whether the process is attached to a terminal.
	// It decides between the live fetch view and plain line output.
	IsInteractive func() bool
}

// interactive is a nil-safe wrapper around IsInteractive.
func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "lhcdata" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lhcdata",
		Short: "Download the LHC tutorial datasets",
		Long: `lhcdata downloads the zipped datasets used in the Heidelberg
machine learning for particle physics tutorials and unpacks them
into a destination directory of your choice.`,
	}

	root.AddCommand(
		newFetchCmd(app),
		newListCmd(app),
		newInfoCmd(app),
		newHistoryCmd(app),
	)

	return root
}
