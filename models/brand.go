package models

import (
	"fmt"
	"time"
)

// Brand represents brands table
type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Vendors  []Vendor  `gorm:"many2many:vendor_brands" json:"vendors,omitempty"`
	Products []Product `gorm:"foreignKey:BrandID" json:"products,omitempty"`
}

// TableName specifies the table name for Brand
func (Brand) TableName() string {
	return "brands"
}

func (b Brand) String() string {
	return fmt.Sprintf("Brand(%s)", b.Name)
}
