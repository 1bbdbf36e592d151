package services

import (
	"context"
	"fmt"
	"log"

	"github.com/purchasing/models"
	"gorm.io/gorm"
)

// VendorInput holds the operator-supplied fields of a new vendor
type VendorInput struct {
	Name         string  `json:"name"`
	Currency     string  `json:"currency"`
	DiscountCode *string `json:"discount_code,omitempty"`
	Discount     float64 `json:"discount"`
}

// VendorService manages vendors
type VendorService struct {
	db *gorm.DB
}

// NewVendorService creates a vendor service on the given database
func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{db: db}
}

// CreateVendor saves a new vendor. A taken name fails with ErrConflict.
func (s *VendorService) CreateVendor(ctx context.Context, in VendorInput) (*models.Vendor, error) {
	vendor := models.Vendor{
		Name:         in.Name,
		Currency:     in.Currency,
		DiscountCode: in.DiscountCode,
		Discount:     in.Discount,
	}
	if vendor.Currency == "" {
		vendor.Currency = models.DefaultCurrency
	}

	if err := s.db.WithContext(ctx).Create(&vendor).Error; err != nil {
		return nil, wrapStoreError(fmt.Sprintf("create vendor %q", in.Name), err)
	}

	log.Printf("Created %s (%s)", vendor, vendor.Currency)
	return &vendor, nil
}

// GetVendor loads a vendor and its brands by ID
func (s *VendorService) GetVendor(ctx context.Context, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.WithContext(ctx).Preload("Brands").First(&vendor, id).Error; err != nil {
		return nil, wrapStoreError(fmt.Sprintf("get vendor %d", id), err)
	}
	return &vendor, nil
}

// GetVendorByName loads a vendor and its brands by name
func (s *VendorService) GetVendorByName(ctx context.Context, name string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.WithContext(ctx).Preload("Brands").Where("name = ?", name).First(&vendor).Error; err != nil {
		return nil, wrapStoreError(fmt.Sprintf("get vendor %q", name), err)
	}
	return &vendor, nil
}

// ListVendors returns every vendor ordered by name
func (s *VendorService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := s.db.WithContext(ctx).Preload("Brands").Order("name").Find(&vendors).Error; err != nil {
		return nil, wrapStoreError("list vendors", err)
	}
	return vendors, nil
}
