package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/purchasing/config"
	"github.com/purchasing/database"
	"github.com/purchasing/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with sample data")
		help    = flag.Bool("help", false, "Show help")
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

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB, cfg.Database.Schema); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Join table registration is needed even when not migrating
	if err := database.SetupJoinTables(database.DB); err != nil {
		log.Fatalf("Failed to register join tables: %v", err)
	}

	if *migrate {
		log.Println("Running database migration...")
		if err := database.AutoMigrate(database.DB, cfg.Database.Schema); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Println("Migration completed successfully")
	}

	if *seed {
		log.Println("Seeding database with sample data...")
		if err := database.SeedData(database.DB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Println("Database seeded successfully")
	}

	server := web.NewServer(cfg)

	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")
	if err := server.Shutdown(5 * time.Second); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}

func showHelp() {
	log.Println(`
Purchasing Support Server

Usage:
  go run . [options]

Options:
  -migrate  Run GORM AutoMigrate on startup
  -seed     Seed database with sample vendors, quotes and rates
  -help     Show this help message

Examples:
  # Start server with a local sqlite database
  DB_DRIVER=sqlite go run . -migrate -seed

For full migration control, use:
  go run ./cmd/migrate

To regenerate the ER diagram:
  go run ./cmd/erd -o doc/er_diagram.mmd`)
}
