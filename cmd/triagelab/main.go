package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/triagelab/internal/cli"
	"github.com/alexanderramin/triagelab/internal/config"
	"github.com/alexanderramin/triagelab/internal/contentpack"
	"github.com/alexanderramin/triagelab/internal/db"
	"github.com/alexanderramin/triagelab/internal/engine"
	"github.com/alexanderramin/triagelab/internal/eventlog"
	"github.com/alexanderramin/triagelab/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	app := &cli.App{Cfg: cfg}

	// Heavyweight wiring happens lazily so commands like version and
	// validate work without a database or a resolvable content pack.
	app.OpenEngine = func(packPath string) (*engine.Controller, func(), error) {
		if packPath == "" {
			packPath = cfg.PackPath
		}

		pack, err := contentpack.Load(packPath)
		if err != nil {
			return nil, nil, err
		}

		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}

		sessions := repository.NewSQLiteSessionRepo(database)
		surveys := eventlog.NewSurveyLog(cfg.SurveyLogPath())
		eng := engine.NewController(pack, sessions, surveys, cfg)

		cleanup := func() { database.Close() }
		return eng, cleanup, nil
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
