package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Vendor{},
		&Brand{},
		&ForexRate{},

		// 2. Tables with single dependencies
		&Product{}, // depends on: Brand

		// 3. Tables with multiple dependencies
		&Quote{},       // depends on: Product, Vendor
		&VendorBrand{}, // depends on: Vendor, Brand
	}
}
