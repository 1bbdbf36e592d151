package models

import (
	"fmt"
	"time"
)

// Product represents products table.
// Name is unique across all brands, not per brand.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	BrandID   uint      `gorm:"not null;index" json:"brand_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Brand  *Brand  `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Quotes []Quote `gorm:"foreignKey:ProductID" json:"quotes,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

func (p Product) String() string {
	if p.Brand != nil {
		return fmt.Sprintf("Product(%s %s)", p.Brand.Name, p.Name)
	}
	return fmt.Sprintf("Product(%s)", p.Name)
}
