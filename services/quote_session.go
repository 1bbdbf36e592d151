package services

import (
	"context"

	"github.com/purchasing/models"
)

// QuoteSession binds a catalog and a vendor so quotes can be entered one
// after another without repeating the vendor.
type QuoteSession struct {
	catalog *CatalogService
	vendor  *models.Vendor
}

// NewQuoteSession creates a session quoting on behalf of vendor
func NewQuoteSession(catalog *CatalogService, vendor *models.Vendor) *QuoteSession {
	return &QuoteSession{catalog: catalog, vendor: vendor}
}

// Vendor returns the bound vendor; its Brands grow as new brands are quoted
func (s *QuoteSession) Vendor() *models.Vendor {
	return s.vendor
}

// Add records an undiscounted quote
func (s *QuoteSession) Add(ctx context.Context, brand, product string, price float64) (*models.Quote, error) {
	return s.AddWithDiscount(ctx, brand, product, price, 0)
}

// AddWithDiscount records a quote with the given discount rate
func (s *QuoteSession) AddWithDiscount(ctx context.Context, brand, product string, price, discount float64) (*models.Quote, error) {
	return s.catalog.AddProductQuote(ctx, s.vendor, brand, product, price, discount)
}
