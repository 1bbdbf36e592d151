package models

import (
	"fmt"
	"time"
)

// Vendor represents vendors table
type Vendor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	Currency     string    `gorm:"type:varchar(3);not null;check:currency <> ''" json:"currency"`
	DiscountCode *string   `gorm:"type:varchar(50)" json:"discount_code,omitempty"`
	Discount     float64   `gorm:"default:0" json:"discount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Brands []Brand `gorm:"many2many:vendor_brands" json:"brands,omitempty"`
	Quotes []Quote `gorm:"foreignKey:VendorID" json:"quotes,omitempty"`
}

// TableName specifies the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}

func (v Vendor) String() string {
	return fmt.Sprintf("Vendor(%s)", v.Name)
}

// HasBrand reports whether the brand is in the loaded brand set.
func (v *Vendor) HasBrand(brandID uint) bool {
	for _, b := range v.Brands {
		if b.ID == brandID {
			return true
		}
	}
	return false
}

// VendorBrand is the vendor_brands join table. Rows are only ever added.
type VendorBrand struct {
	VendorID  uint      `gorm:"primaryKey" json:"vendor_id"`
	BrandID   uint      `gorm:"primaryKey" json:"brand_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for VendorBrand
func (VendorBrand) TableName() string {
	return "vendor_brands"
}
