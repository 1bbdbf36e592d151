package database

import (
	"fmt"
	"log"

	"github.com/purchasing/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB, schemaName string) error {
	log.Println("Starting GORM AutoMigrate...")

	if isPostgres(db) {
		if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
			log.Printf("Warning: Could not create schema: %v", err)
		}
		if err := db.Exec(fmt.Sprintf("SET search_path TO %s", schemaName)).Error; err != nil {
			return fmt.Errorf("failed to set search path: %w", err)
		}
	}

	// vendor_brands carries its own model so the link time is recorded
	if err := SetupJoinTables(db); err != nil {
		return err
	}

	// join tables are created along with their many2many owner
	migrator := db.Migrator()
	all := models.AllModels()
	existed := make([]bool, len(all))
	for i, model := range all {
		existed[i] = migrator.HasTable(model)
	}

	for i, model := range all {
		tableName := tableOf(db, model)

		if err := migrator.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", tableName, err)
		}

		if existed[i] {
			log.Printf("  ✓ Table up to date: %s", tableName)
		} else {
			log.Printf("  ✓ Created table: %s", tableName)
		}
	}

	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// SetupJoinTables registers VendorBrand as the join model of both sides of
// the vendor/brand many-to-many relation.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Vendor{}, "Brands", &models.VendorBrand{}); err != nil {
		return fmt.Errorf("failed to set up vendor_brands join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Brand{}, "Vendors", &models.VendorBrand{}); err != nil {
		return fmt.Errorf("failed to set up vendor_brands join table: %w", err)
	}
	return nil
}

// CheckConnection verifies the database connection and schema
func CheckConnection(db *gorm.DB, schemaName string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if !isPostgres(db) {
		return nil
	}

	var schemaExists bool
	err = db.Raw("SELECT EXISTS(SELECT 1 FROM information_schema.schemata WHERE schema_name = ?)", schemaName).
		Scan(&schemaExists).Error
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	if !schemaExists {
		log.Printf("Warning: '%s' schema does not exist, creating it", schemaName)
		if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// CreateIndexes creates lookup indexes that the model tags don't cover
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		// Quote history per vendor and per product, newest first
		{"idx_quotes_vendor_date", "CREATE INDEX IF NOT EXISTS idx_quotes_vendor_date ON quotes(vendor_id, date_created)"},
		{"idx_quotes_product_date", "CREATE INDEX IF NOT EXISTS idx_quotes_product_date ON quotes(product_id, date_created)"},

		// Latest rate per currency
		{"idx_forex_code_date", "CREATE INDEX IF NOT EXISTS idx_forex_code_date ON forex(code, date)"},

		// Reverse side of the vendor/brand link
		{"idx_vendor_brands_brand", "CREATE INDEX IF NOT EXISTS idx_vendor_brands_brand ON vendor_brands(brand_id)"},
	}

	var failed int
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
			failed++
			continue
		}
		log.Printf("  ✓ Created index: %s", idx.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d indexes failed", failed, len(indexes))
	}
	return nil
}

// DropAllTables drops every model table, children first
func DropAllTables(db *gorm.DB) error {
	all := models.AllModels()
	migrator := db.Migrator()
	for i := len(all) - 1; i >= 0; i-- {
		tableName := tableOf(db, all[i])
		if err := migrator.DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tableName, err)
		}
		log.Printf("  Dropped table: %s", tableName)
	}
	return nil
}

// TableNames lists the model tables in dependency order
func TableNames(db *gorm.DB) []string {
	all := models.AllModels()
	names := make([]string, 0, len(all))
	for _, model := range all {
		names = append(names, tableOf(db, model))
	}
	return names
}

func tableOf(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}
