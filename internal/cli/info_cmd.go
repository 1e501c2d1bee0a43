package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ml4phys/lhcdata/internal/cli/formatter"
	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/ml4phys/lhcdata/internal/repository"
	"github.com/spf13/cobra"
)

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <dataset>",
		Short: "Show details for one dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid dataset identifier %q: expected a number between 1 and %d",
					args[0], len(domain.Datasets()))
			}

			ds, err := domain.ResolveDataset(id)
			if err != nil {
				return err
			}

			var last *domain.FetchRecord
			if app.History != nil {
				rec, err := app.History.LastByDataset(context.Background(), ds.ID)
				if err != nil && !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				last = rec
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDatasetInfo(ds, ds.URL(app.BaseURL), last))
			return nil
		},
	}
}
