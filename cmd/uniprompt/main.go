package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/uniprompt/internal/cli"
	"github.com/alexanderramin/uniprompt/internal/config"
	"github.com/alexanderramin/uniprompt/internal/db"
	"github.com/alexanderramin/uniprompt/internal/repository"
	"github.com/alexanderramin/uniprompt/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	// The liked set always lives in the local database; shared prompts may
	// live in a separate store.
	local, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer local.Close()

	library := local
	if cfg.LibraryPath() != cfg.DBPath {
		library, err = db.OpenDB(cfg.LibraryPath())
		if err != nil {
			return fmt.Errorf("opening library database: %w", err)
		}
		defer library.Close()
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Library: service.NewLibraryService(
			repository.NewSQLiteSharedPromptRepo(library),
			repository.NewSQLiteLikedPromptRepo(local),
			observer,
		),
		Composer:       cfg.ComposerOptions(),
		RenderMarkdown: cfg.RenderMarkdown,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
