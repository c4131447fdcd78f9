package main

import (
	"log/slog"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/felixbrock/handymatch/internal/app"
	"github.com/felixbrock/handymatch/internal/components"
	"github.com/felixbrock/handymatch/internal/logging"
	"github.com/felixbrock/handymatch/internal/persistence"
)

func config() app.Config {
	if err := app.LoadDotenv(); err != nil {
		slog.Warn("dotenv not loaded", "err", err)
	}

	return app.LoadConfig(os.Getenv)
}

func main() {
	config := config()

	if _, err := logging.New(config.Log); err != nil {
		slog.Error("logger setup failed", "err", err)
		os.Exit(1)
	}

	componentBuilder := app.ComponentBuilder{
		Home:       components.Home,
		ComingSoon: components.ComingSoon,
		Error:      components.Error,
	}

	a := app.App{
		Catalog:          persistence.CatalogRepo{},
		ComponentBuilder: componentBuilder,
		Config:           config,
	}

	if err := a.Start(); err != nil {
		slog.Error("app stopped", "err", err)
		os.Exit(1)
	}
}
