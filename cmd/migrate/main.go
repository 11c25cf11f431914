package main

import (
	"flag"
	"os"

	"github.com/magazine-platform/internal/config"
	"github.com/magazine-platform/internal/database"
	"github.com/magazine-platform/pkg/logger"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	switch *direction {
	case "up":
		if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	case "down":
		if err := db.MigrateDown(cfg.Database.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
	default:
		log.Error().Str("direction", *direction).Msg("Unknown direction, use up or down")
		os.Exit(1)
	}
}
