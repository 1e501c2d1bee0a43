package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/ml4phys/lhcdata/internal/cli/formatter"
	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/ml4phys/lhcdata/internal/service"
	"github.com/spf13/cobra"
)

// plainBarWidth is the progress bar width used for line-mode redraws.
const plainBarWidth = 24

func newFetchCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "fetch [dataset] [dest]",
		Short: "Download and extract a tutorial dataset",
		Long: `Download one of the tutorial dataset archives and extract it into
the destination directory. Without arguments an interactive picker
is shown when running in a terminal.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := fetchRequestFromArgs(app, args)
			if err != nil {
				return err
			}

			if plain || !app.interactive() {
				return runFetchPlain(cmd, app, req)
			}
			return runFetchTUI(app, req)
		},
	}

	registerPlainFlag(cmd.Flags(), &plain)

	return cmd
}

// fetchRequestFromArgs builds a FetchRequest from positional arguments,
// prompting for whatever is missing when attached to a terminal.
func fetchRequestFromArgs(app *App, args []string) (service.FetchRequest, error) {
	var req service.FetchRequest

	if len(args) == 0 {
		if !app.interactive() {
			return req, errors.New("dataset identifier and destination directory are required")
		}
		return pickFetchRequest()
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return req, fmt.Errorf("invalid dataset identifier %q: expected a number between 1 and %d",
			args[0], len(domain.Datasets()))
	}
	req.DatasetID = id

	if len(args) < 2 {
		if !app.interactive() {
			return req, errors.New("destination directory is required")
		}
		dest, err := pickDestDir()
		if err != nil {
			return req, err
		}
		req.DestDir = dest
		return req, nil
	}

	req.DestDir = args[1]
	return req, nil
}

func runFetchPlain(cmd *cobra.Command, app *App, req service.FetchRequest) error {
	printer := newPlainPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	observer := service.CombineFetchObservers(printer, app.FetchAudit)

	res, err := app.Fetch.Fetch(context.Background(), req, observer)
	if err != nil {
		return err
	}

	printer.finish(res)
	return nil
}

// plainPrinter renders fetch progress as plain lines. When stderr is a
// terminal it additionally redraws a single transfer status line there,
// keeping stdout clean for the announcement and success lines.
type plainPrinter struct {
	out     io.Writer
	errOut  io.Writer
	redraw  bool
	dataset domain.Dataset
	drew    bool
}

func newPlainPrinter(out, errOut io.Writer) *plainPrinter {
	return &plainPrinter{
		out:    out,
		errOut: errOut,
		redraw: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

func (p *plainPrinter) OnResolve(ds domain.Dataset, url string) {
	p.dataset = ds
	fmt.Fprintf(p.out, "Trying to download dataset %d ('%s', used in tutorials %s) from %s to %s\n",
		ds.ID, ds.Description, formatter.FormatTutorials(ds.Tutorials), url, ds.Archive)
}

func (p *plainPrinter) OnDownloadProgress(written, total int64) {
	if !p.redraw {
		return
	}
	fmt.Fprintf(p.errOut, "\r\033[K%s", formatter.TransferLine(written, total, plainBarWidth))
	p.drew = true
}

func (p *plainPrinter) OnDownloadComplete(bytes int64) {
	p.clearLine()
	fmt.Fprintf(p.out, "Downloaded %s (%s)\n", p.dataset.Archive, formatter.FormatBytes(bytes))
}

func (p *plainPrinter) OnExtractProgress(done, total int, name string) {
	if p.redraw {
		fmt.Fprintf(p.errOut, "\r\033[K%s", formatter.ExtractLine(done, total, name, plainBarWidth))
		p.drew = true
		if done == total {
			p.clearLine()
		}
		return
	}
	fmt.Fprintf(p.out, "  %d/%d %s\n", done, total, name)
}

// clearLine erases the redrawn status line, if any.
func (p *plainPrinter) clearLine() {
	if p.drew {
		fmt.Fprint(p.errOut, "\r\033[K")
		p.drew = false
	}
}

func (p *plainPrinter) finish(res *service.FetchResult) {
	fmt.Fprintf(p.out, "Successfully extracted %d files from %s\n",
		res.ExtractedFiles, res.Dataset.Archive)
}
