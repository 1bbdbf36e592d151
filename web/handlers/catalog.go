package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// BrandList returns all brands with their products
func BrandList(c *fiber.Ctx) error {
	brands, err := catalog().ListBrands(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(brands)
}

// ProductList returns all products with their brand
func ProductList(c *fiber.Ctx) error {
	products, err := catalog().ListProducts(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(products)
}

// ProductView returns one product with its quote history
func ProductView(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badRequest(c, "Invalid product name")
	}

	product, err := catalog().GetProductByName(c.UserContext(), name)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(product)
}
