package main

import (
	"context"
	"flag"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"bookcatalog/internal/config"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			logrus.Fatal("Name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logrus.Fatalf("Failed to create migration: %v", err)
		}
		logrus.Infof("Migration created: %s", *name)
		return
	}

	dsn := databaseDSN()
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logrus.Fatalf("Failed to connect to database (%s): %v", config.RedactDSN(dsn), err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logrus.Fatalf("Failed to set dialect: %v", err)
	}

	switch *command {
	case "up":
		if err := goose.UpContext(ctx, db, dir); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, db, dir); err != nil {
			logrus.Fatalf("Failed to rollback migrations: %v", err)
		}
		logrus.Info("Migrations rolled back successfully")
	case "status":
		if err := goose.StatusContext(ctx, db, dir); err != nil {
			logrus.Fatalf("Failed to check migration status: %v", err)
		}
	default:
		logrus.Fatalf("Unknown command: %s. Use: up, down, status, create", *command)
	}
}
