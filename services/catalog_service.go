package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/purchasing/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogOptions tunes AddProductQuote
type CatalogOptions struct {
	// LinkExistingBrands also links a brand that already existed to the
	// quoting vendor. By default only newly created brands are linked.
	LinkExistingBrands bool
	// ConflictRetries replays a transaction that lost a unique-name race.
	ConflictRetries int
}

// CatalogService records vendor quotes and maintains the brand/product catalog
type CatalogService struct {
	db   *gorm.DB
	opts CatalogOptions
}

// NewCatalogService creates a catalog service on the given database
func NewCatalogService(db *gorm.DB, opts CatalogOptions) *CatalogService {
	if opts.ConflictRetries < 0 {
		opts.ConflictRetries = 0
	}
	return &CatalogService{db: db, opts: opts}
}

type quoteResult struct {
	quote  *models.Quote
	brand  *models.Brand
	linked bool
}

// AddProductQuote records a quote of productName by the vendor. The brand
// and product are looked up by name and created when missing; a new quote
// row is written on every call. All writes commit in one transaction.
//
// An existing product keeps its brand: brandName is only used to resolve
// or create the brand, and to own a product created by this call.
func (s *CatalogService) AddProductQuote(ctx context.Context, vendor *models.Vendor, brandName, productName string, price, discount float64) (*models.Quote, error) {
	if vendor == nil || vendor.ID == 0 {
		return nil, errors.New("vendor must be saved before it can quote")
	}
	// quotes carry the vendor's currency, never the column default
	if vendor.Currency == "" {
		return nil, fmt.Errorf("%s has no currency", vendor)
	}

	for attempt := 0; ; attempt++ {
		res, err := s.addProductQuote(ctx, vendor, brandName, productName, price, discount)
		if err == nil {
			if res.linked && !vendor.HasBrand(res.brand.ID) {
				vendor.Brands = append(vendor.Brands, *res.brand)
			}
			log.Printf("Recorded %s", res.quote)
			return res.quote, nil
		}

		if !errors.Is(err, ErrConflict) || attempt >= s.opts.ConflictRetries {
			return nil, err
		}
		log.Printf("Quote %q/%q for %s hit a name conflict, retrying (%d/%d)",
			brandName, productName, vendor, attempt+1, s.opts.ConflictRetries)
	}
}

func (s *CatalogService) addProductQuote(ctx context.Context, vendor *models.Vendor, brandName, productName string, price, discount float64) (*quoteResult, error) {
	res := &quoteResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		brand, brandCreated, err := firstOrCreate(tx, brandName, func() *models.Brand {
			return &models.Brand{Name: brandName}
		})
		if err != nil {
			return fmt.Errorf("resolve brand %q: %w", brandName, err)
		}
		res.brand = brand

		if brandCreated || s.opts.LinkExistingBrands {
			linked, err := linkVendorBrand(tx, vendor.ID, brand.ID)
			if err != nil {
				return fmt.Errorf("link brand %q to %s: %w", brandName, vendor, err)
			}
			res.linked = brandCreated || linked
		}

		product, _, err := firstOrCreate(tx, productName, func() *models.Product {
			return &models.Product{Name: productName, BrandID: brand.ID}
		})
		if err != nil {
			return fmt.Errorf("resolve product %q: %w", productName, err)
		}

		if product.BrandID == brand.ID {
			product.Brand = brand
		} else {
			var owner models.Brand
			if err := tx.First(&owner, product.BrandID).Error; err != nil {
				return fmt.Errorf("load brand of product %q: %w", productName, err)
			}
			product.Brand = &owner
		}

		quote := &models.Quote{
			ProductID: product.ID,
			VendorID:  vendor.ID,
			Currency:  vendor.Currency,
			Value:     price,
			Discount:  discount,
		}
		if err := tx.Create(quote).Error; err != nil {
			return fmt.Errorf("create quote: %w", err)
		}
		quote.Product = product
		quote.Vendor = vendor
		res.quote = quote
		return nil
	})
	if err != nil {
		return nil, wrapStoreError("add product quote", err)
	}
	return res, nil
}

// firstOrCreate fetches the named entity, building and inserting it on a miss
func firstOrCreate[T any, PT interface {
	*T
	models.Named
}](tx *gorm.DB, name string, build func() *T) (*T, bool, error) {
	found, err := models.FindByName[T, PT](tx, name)
	if err == nil {
		return found, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	entity := build()
	if err := tx.Create(entity).Error; err != nil {
		return nil, false, err
	}
	return entity, true, nil
}

// linkVendorBrand adds the vendor/brand pair, reporting whether it was new
func linkVendorBrand(tx *gorm.DB, vendorID, brandID uint) (bool, error) {
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.VendorBrand{VendorID: vendorID, BrandID: brandID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// OpenSession loads the named vendor and binds it to a QuoteSession
func (s *CatalogService) OpenSession(ctx context.Context, vendorName string) (*QuoteSession, error) {
	var vendor models.Vendor
	err := s.db.WithContext(ctx).Preload("Brands").Where("name = ?", vendorName).First(&vendor).Error
	if err != nil {
		return nil, wrapStoreError(fmt.Sprintf("load vendor %q", vendorName), err)
	}
	return NewQuoteSession(s, &vendor), nil
}
