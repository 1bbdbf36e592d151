package models_test

import (
	"testing"

	"github.com/purchasing/database/dbtest"
	"github.com/purchasing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindByName(t *testing.T) {
	db := dbtest.New(t)

	brand := models.Brand{Name: "Acme"}
	require.NoError(t, db.Create(&brand).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Widget", BrandID: brand.ID}).Error)

	found, err := models.FindByName[models.Brand](db, "Acme")
	require.NoError(t, err)
	assert.Equal(t, brand.ID, found.EntityID())
	assert.Equal(t, "Acme", found.EntityName())

	product, err := models.FindByName[models.Product](db, "Widget")
	require.NoError(t, err)
	assert.Equal(t, brand.ID, product.BrandID)

	_, err = models.FindByName[models.Brand](db, "acme")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = models.FindByName[models.Vendor](db, "Nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNamesAreUnique(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, db.Create(&models.Brand{Name: "Acme"}).Error)
	assert.Error(t, db.Create(&models.Brand{Name: "Acme"}).Error)

	require.NoError(t, db.Create(&models.Vendor{Name: "V", Currency: "USD"}).Error)
	assert.Error(t, db.Create(&models.Vendor{Name: "V", Currency: "EUR"}).Error)
}

func TestQuoteRequiresProductAndVendor(t *testing.T) {
	db := dbtest.New(t)

	err := db.Create(&models.Quote{ProductID: 41, VendorID: 42, Value: 1}).Error
	assert.Error(t, err)
}

func TestStrings(t *testing.T) {
	brand := &models.Brand{Name: "Acme"}
	product := &models.Product{Name: "Widget", Brand: brand}
	vendor := &models.Vendor{Name: "V"}
	quote := models.Quote{Product: product, Vendor: vendor, Value: 9.99, Currency: "EUR"}

	assert.Equal(t, "Vendor(V)", vendor.String())
	assert.Equal(t, "Brand(Acme)", brand.String())
	assert.Equal(t, "Product(Acme Widget)", product.String())
	assert.Equal(t, "Product(Loose)", models.Product{Name: "Loose"}.String())
	assert.Equal(t, "Quote(V / Acme Widget / 9.99 EUR)", quote.String())
	assert.Equal(t, "Quote(? / ? ? / 1.00 USD)", models.Quote{Value: 1, Currency: "USD"}.String())
	assert.Equal(t, "Forex(USD -> EUR: 0.92)", models.ForexRate{Code: "EUR", UnitsPerUSD: 0.92}.String())
}

func TestQuoteNet(t *testing.T) {
	assert.InDelta(t, 90.0, models.Quote{Value: 100, Discount: 0.1}.Net(), 1e-9)
	assert.Equal(t, 100.0, models.Quote{Value: 100}.Net())
}

func TestVendorHasBrand(t *testing.T) {
	vendor := models.Vendor{Brands: []models.Brand{{ID: 3, Name: "Acme"}}}
	assert.True(t, vendor.HasBrand(3))
	assert.False(t, vendor.HasBrand(4))
}
