package database

import (
	"context"
	"fmt"
	"log"

	"github.com/purchasing/models"
	"github.com/purchasing/services"
	"gorm.io/gorm"
)

type seedQuote struct {
	vendor   string
	brand    string
	product  string
	price    float64
	discount float64
}

var seedVendors = []services.VendorInput{
	{Name: "Thomann", Currency: "EUR"},
	{Name: "Sweetwater", Currency: "USD"},
	{Name: "Gear4music", Currency: "GBP", DiscountCode: strPtr("G4M10"), Discount: 0.1},
}

var seedQuotes = []seedQuote{
	{"Thomann", "Shure", "SM58", 99.00, 0},
	{"Thomann", "Shure", "SM57", 94.00, 0},
	{"Thomann", "Neumann", "TLM 103", 899.00, 0.05},
	{"Sweetwater", "Shure", "SM58", 99.99, 0},
	{"Sweetwater", "Universal Audio", "Apollo Twin X", 899.00, 0},
	{"Gear4music", "Neumann", "TLM 103", 829.00, 0},
	{"Gear4music", "Shure", "SM57", 79.00, 0.1},
}

var seedRates = []models.ForexRate{
	{Code: "EUR", UnitsPerUSD: 0.92, USDPerUnit: 1.087},
	{Code: "GBP", UnitsPerUSD: 0.79, USDPerUnit: 1.266},
}

// SeedData fills an empty database with sample vendors, quotes and rates.
// Quotes go through the catalog service so brands and products are
// created the same way operators create them.
func SeedData(db *gorm.DB) error {
	log.Println("Checking if database needs seeding...")

	var count int64
	if err := db.Model(&models.Vendor{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count vendors: %w", err)
	}
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	ctx := context.Background()
	vendorSvc := services.NewVendorService(db)
	catalog := services.NewCatalogService(db, services.CatalogOptions{})
	forex := services.NewForexService(db)

	vendors := make(map[string]*models.Vendor, len(seedVendors))
	for _, in := range seedVendors {
		vendor, err := vendorSvc.CreateVendor(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to seed vendor %s: %w", in.Name, err)
		}
		vendors[vendor.Name] = vendor
	}
	log.Printf("  ✓ Seeded %d vendors", len(vendors))

	for _, q := range seedQuotes {
		if _, err := catalog.AddProductQuote(ctx, vendors[q.vendor], q.brand, q.product, q.price, q.discount); err != nil {
			return fmt.Errorf("failed to seed quote %s/%s: %w", q.vendor, q.product, err)
		}
	}
	log.Printf("  ✓ Seeded %d quotes", len(seedQuotes))

	for i := range seedRates {
		rate := seedRates[i]
		if err := forex.RecordRate(ctx, &rate); err != nil {
			return fmt.Errorf("failed to seed forex rate %s: %w", rate.Code, err)
		}
	}
	log.Printf("  ✓ Seeded %d forex rates", len(seedRates))

	return nil
}

// ClearData deletes all rows, children first
func ClearData(db *gorm.DB) error {
	tables := TableNames(db)
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", tables[i])).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", tables[i], err)
		}
		log.Printf("  Cleared table: %s", tables[i])
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
