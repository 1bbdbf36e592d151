package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ForexRate represents forex table: a dated USD exchange-rate snapshot.
// Nothing converts with it yet; it is a bare record.
type ForexRate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Code        string    `gorm:"type:varchar(3);not null;index" json:"code"`
	UnitsPerUSD float64   `gorm:"column:units_per_usd" json:"units_per_usd"`
	USDPerUnit  float64   `gorm:"column:usd_per_unit" json:"usd_per_unit"`
}

// TableName specifies the table name for ForexRate
func (ForexRate) TableName() string {
	return "forex"
}

// BeforeCreate stamps the snapshot date when the caller left it empty.
func (f *ForexRate) BeforeCreate(tx *gorm.DB) error {
	if f.Date.IsZero() {
		f.Date = tx.Statement.DB.NowFunc()
	}
	return nil
}

func (f ForexRate) String() string {
	return fmt.Sprintf("Forex(USD -> %s: %v)", f.Code, f.UnitsPerUSD)
}
