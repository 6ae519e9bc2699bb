package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/reelslot/internal/database"
)

func main() {
	migrate := flag.Bool("migrate", true, "apply migrations after recreating the database")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbName := os.Getenv("DB_NAME")
	creds := fmt.Sprintf("%s:%s@%s:%s", os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"), os.Getenv("DB_PORT"))

	serverPool, err := database.NewPool("postgres://"+creds+"/postgres?sslmode=disable", 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}

	ctx := context.Background()
	ident := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	serverPool.Close()

	if !*migrate {
		log.Println("Database reset complete. Run cmd/setup to apply migrations.")
		return
	}

	pool, err := database.NewPool("postgres://"+creds+"/"+dbName+"?sslmode=disable", 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", dbName, err)
	}
	defer pool.Close()
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	log.Println("Database reset and migrated.")
}
