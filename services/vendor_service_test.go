package services_test

import (
	"context"
	"testing"

	"github.com/purchasing/database/dbtest"
	"github.com/purchasing/models"
	"github.com/purchasing/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorService(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	svc := services.NewVendorService(db)

	code := "SAVE10"
	created, err := svc.CreateVendor(ctx, services.VendorInput{
		Name:         "Thomann",
		Currency:     "EUR",
		DiscountCode: &code,
		Discount:     0.1,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.CreateVendor(ctx, services.VendorInput{Name: "Thomann", Currency: "USD"})
	assert.ErrorIs(t, err, services.ErrConflict)

	plain, err := svc.CreateVendor(ctx, services.VendorInput{Name: "Andertons"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCurrency, plain.Currency)

	loaded, err := svc.GetVendor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "EUR", loaded.Currency)
	require.NotNil(t, loaded.DiscountCode)
	assert.Equal(t, "SAVE10", *loaded.DiscountCode)
	assert.Equal(t, 0.1, loaded.Discount)

	byName, err := svc.GetVendorByName(ctx, "Andertons")
	require.NoError(t, err)
	assert.Equal(t, plain.ID, byName.ID)

	_, err = svc.GetVendor(ctx, 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.GetVendorByName(ctx, "Nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)

	vendors, err := svc.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Andertons", vendors[0].Name)
	assert.Equal(t, "Thomann", vendors[1].Name)
}

func TestVendorServicePreloadsBrands(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	vendor := createVendor(t, db, "V", "USD")

	catalog := services.NewCatalogService(db, services.CatalogOptions{})
	_, err := catalog.AddProductQuote(ctx, vendor, "Acme", "Widget", 1, 0)
	require.NoError(t, err)

	loaded, err := services.NewVendorService(db).GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Brands, 1)
	assert.Equal(t, "Acme", loaded.Brands[0].Name)
}
