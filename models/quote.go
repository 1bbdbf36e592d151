package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultCurrency is stored when a quote is inserted without a currency.
const DefaultCurrency = "USD"

// Quote represents quotes table: one observed price of a product at a vendor.
// Quotes are append-only; nothing updates them.
type Quote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DateCreated time.Time `gorm:"type:date;not null" json:"date_created"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	VendorID    uint      `gorm:"not null;index" json:"vendor_id"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Value       float64   `gorm:"not null" json:"value"`
	Discount    float64   `gorm:"not null;default:0" json:"discount"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Vendor  *Vendor  `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// TableName specifies the table name for Quote
func (Quote) TableName() string {
	return "quotes"
}

// BeforeCreate stamps the creation date when the caller left it empty.
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.DateCreated.IsZero() {
		q.DateCreated = tx.Statement.DB.NowFunc()
	}
	return nil
}

// Net is the quoted value after the quote's discount rate.
func (q Quote) Net() float64 {
	return q.Value * (1 - q.Discount)
}

func (q Quote) String() string {
	vendor, brand, product := "?", "?", "?"
	if q.Vendor != nil {
		vendor = q.Vendor.Name
	}
	if q.Product != nil {
		product = q.Product.Name
		if q.Product.Brand != nil {
			brand = q.Product.Brand.Name
		}
	}
	return fmt.Sprintf("Quote(%s / %s %s / %.2f %s)", vendor, brand, product, q.Value, q.Currency)
}
