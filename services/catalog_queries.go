package services

import (
	"context"
	"fmt"

	"github.com/purchasing/models"
	"gorm.io/gorm"
)

// QuoteFilter narrows ListQuotes. Zero values match everything.
type QuoteFilter struct {
	VendorID    uint
	ProductName string
	Limit       int
}

// ListBrands returns all brands with their products
func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := s.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Order("name").
		Find(&brands).Error
	if err != nil {
		return nil, wrapStoreError("list brands", err)
	}
	return brands, nil
}

// ListProducts returns all products with their brand
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Preload("Brand").Order("name").Find(&products).Error; err != nil {
		return nil, wrapStoreError("list products", err)
	}
	return products, nil
}

// GetProductByName loads a product with its brand and quote history
func (s *CatalogService) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Quotes", func(db *gorm.DB) *gorm.DB { return db.Order("date_created DESC, id DESC") }).
		Preload("Quotes.Vendor").
		Where("name = ?", name).
		First(&product).Error
	if err != nil {
		return nil, wrapStoreError(fmt.Sprintf("get product %q", name), err)
	}
	return &product, nil
}

// ListQuotes returns quotes newest first with product, brand and vendor loaded
func (s *CatalogService) ListQuotes(ctx context.Context, filter QuoteFilter) ([]models.Quote, error) {
	query := s.db.WithContext(ctx).
		Preload("Product.Brand").
		Preload("Vendor").
		Order("quotes.date_created DESC, quotes.id DESC")

	if filter.VendorID != 0 {
		query = query.Where("quotes.vendor_id = ?", filter.VendorID)
	}
	if filter.ProductName != "" {
		query = query.Joins("JOIN products ON products.id = quotes.product_id").
			Where("products.name = ?", filter.ProductName)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var quotes []models.Quote
	if err := query.Find(&quotes).Error; err != nil {
		return nil, wrapStoreError("list quotes", err)
	}
	return quotes, nil
}
