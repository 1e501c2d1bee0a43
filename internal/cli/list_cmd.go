package cli

import (
	"fmt"

	"github.com/ml4phys/lhcdata/internal/cli/formatter"
	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDatasetList(domain.Datasets()))
			return nil
		},
	}
}
