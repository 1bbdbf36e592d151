package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/purchasing/config"
	"github.com/purchasing/database"
)

func main() {
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s\n", cfg.Database.Describe())

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB, cfg.Database.Schema); err != nil {
		log.Printf("⚠️  Warning: %v", err)
	}

	if *drop {
		fmt.Println("⚠️  Dropping all tables...")
		if err := database.DropAllTables(database.DB); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped")
	}

	fmt.Println("🔄 Running GORM AutoMigrate...")
	if err := database.AutoMigrate(database.DB, cfg.Database.Schema); err != nil {
		log.Fatalf("❌ Failed to run migration: %v", err)
	}

	fmt.Println("✅ Migration completed successfully!")
	fmt.Printf("📊 Tables: %v\n", database.TableNames(database.DB))
}

func showHelp() {
	fmt.Println(`
Database Migration Tool

Usage:
  go run ./cmd/migrate [options]

Options:
  -drop     Drop all tables before migration (WARNING: Data loss!)
  -help     Show this help message

Environment:
  Requires .env file or environment variables for database configuration:
  - DB_DRIVER (postgres or sqlite)
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SCHEMA
  - SQLITE_PATH when DB_DRIVER=sqlite`)
}
