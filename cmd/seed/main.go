package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/purchasing/config"
	"github.com/purchasing/database"
	"gorm.io/gorm"
)

func main() {
	force := flag.Bool("force", false, "Force re-seed even if data exists")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌱 Starting Database Seeding Tool")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	fmt.Printf("📊 Database: %s\n\n", cfg.Database.Describe())

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB, cfg.Database.Schema); err != nil {
		log.Fatal("Database connection check failed:", err)
	}

	if *force {
		fmt.Println("⚠️  Force flag enabled. Clearing existing data...")
		if err := database.ClearData(database.DB); err != nil {
			log.Fatal("Failed to clear data:", err)
		}
		fmt.Println()
	}

	if err := database.SeedData(database.DB); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Println("\n📊 Database Statistics:")
	showTableStats(database.DB)

	fmt.Println("\n✨ Seeding completed successfully!")
}

func showHelp() {
	fmt.Println("Database Seeding Tool")
	fmt.Println("====================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run ./cmd/seed [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -force    Force re-seed by clearing existing data")
	fmt.Println("  -help     Show this help message")
}

func showTableStats(db *gorm.DB) {
	for _, table := range database.TableNames(db) {
		var count int64
		db.Table(table).Count(&count)
		fmt.Printf("  %-15s: %d rows\n", table, count)
	}
}
