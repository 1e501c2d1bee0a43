package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/ml4phys/lhcdata/internal/cli"
	"github.com/ml4phys/lhcdata/internal/config"
	"github.com/ml4phys/lhcdata/internal/db"
	"github.com/ml4phys/lhcdata/internal/fetch"
	"github.com/ml4phys/lhcdata/internal/repository"
	"github.com/ml4phys/lhcdata/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Determine manifest path: env var or default ~/.lhcdata/lhcdata.db
	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lhcdata", "lhcdata.db")
	}

	// Open manifest database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening manifest database: %w", err)
	}
	defer database.Close()

	logRepo := repository.NewSQLiteFetchLogRepo(database)

	// Wire services
	var observers []service.UseCaseObserver
	if cfg.Log {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	fetcher := fetch.NewFetcher(fetch.NewHTTPClient(cfg.Timeout()))

	app := &cli.App{
		Fetch:   service.NewFetchService(fetcher, logRepo, cfg.BaseURL, observers...),
		History: service.NewHistoryService(logRepo),
		BaseURL: cfg.BaseURL,
	}
	if cfg.Log {
		app.FetchAudit = service.NewLogFetchObserver(os.Stderr)
	}

	// Detect interactive terminal for the live fetch view.
	app.IsInteractive = func() bool {
		stdin := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		stdout := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return stdin && stdout
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
