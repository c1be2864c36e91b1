package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/linebrief/internal/briefing"
	"github.com/alexanderramin/linebrief/internal/catalog"
	"github.com/alexanderramin/linebrief/internal/cli"
	"github.com/alexanderramin/linebrief/internal/config"
	"github.com/alexanderramin/linebrief/internal/db"
	"github.com/alexanderramin/linebrief/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Transition logs go to a file; stderr belongs to the alt-screen TUI.
	var observer briefing.Observer = briefing.NoopObserver{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		observer = briefing.NewLogObserver(f, cfg.SlogLevel())
	}

	var records briefing.RecordSource = catalog.Static{}
	if cfg.Catalog == config.CatalogSQLite {
		// The mirror lives in memory and is rebuilt on every launch.
		database, err := db.OpenDB(db.MemoryPath)
		if err != nil {
			return fmt.Errorf("opening catalog mirror: %w", err)
		}
		defer database.Close()

		if err := repository.SeedCatalog(context.Background(), db.NewSQLiteUnitOfWork(database), catalog.All()); err != nil {
			return fmt.Errorf("seeding catalog mirror: %w", err)
		}
		records = repository.NewSQLiteRecordRepo(database)
	}

	app := &cli.App{
		Config:   cfg,
		Records:  records,
		Observer: observer,
	}

	// Detect interactive terminal for the TUI and the form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
