package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/logger"
	"github.com/pageza/recipe-api/backend/internal/model"
)

func main() {
	drop := flag.Bool("drop", false, "Drop the recipes table before migrating")
	flag.Parse()

	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if *drop {
		slog.Warn("dropping recipes table")
		if err := db.Migrator().DropTable(&model.Recipe{}); err != nil {
			slog.Error("failed to drop recipes table", "error", err)
			os.Exit(1)
		}
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}
