package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/server/internal/config"
	"github.com/devfolio/server/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seeder <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  seed    - embed and insert projects from a JSON file")
		fmt.Println("  update  - re-embed and update existing projects, keeping version snapshots")
		fmt.Println("\nOptions:")
		fmt.Println("  --path <path>  - Custom path to the projects JSON file")
		fmt.Println("  --clear        - Clear existing projects before seeding")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	// route to appropriate command
	switch command {
	case "seed":
		flags := config.ParseSeedFlags()
		if err := SeedProjects(cfg, db, flags); err != nil {
			logger.Fatal("failed to seed projects", "error", err)
		}

	case "update":
		flags := config.ParseUpdateFlags()
		if err := UpdateProjects(cfg, db, flags); err != nil {
			logger.Fatal("failed to update projects", "error", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
