package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/m04kA/salon-booking/internal/config"
	"github.com/m04kA/salon-booking/migrations"
	"github.com/m04kA/salon-booking/pkg/logger"
)

const usage = "usage: migrate [up|down|force <version>|version]"

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	command := "up"
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("Failed to create database driver: %v", err)
	}

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatal("Failed to create migration source: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		log.Fatal("Failed to create migrator: %v", err)
	}
	defer func() { _, _ = m.Close() }()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		if len(os.Args) < 3 {
			log.Fatal(usage)
		}
		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatal("Invalid version %q: %v", os.Args[2], convErr)
		}
		err = m.Force(version)
	case "version":
		version, dirty, verErr := m.Version()
		if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
			log.Fatal("Failed to read version: %v", verErr)
		}
		log.Info("Schema version=%d, dirty=%t", version, dirty)
		return
	default:
		log.Fatal(usage)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("Migration %s failed: %v", command, err)
	}

	log.Info("Migration %s complete", command)
}
