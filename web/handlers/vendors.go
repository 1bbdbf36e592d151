package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/purchasing/database"
	"github.com/purchasing/services"
)

// VendorList returns all vendors
func VendorList(c *fiber.Ctx) error {
	vendors, err := services.NewVendorService(database.GetDB()).ListVendors(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(vendors)
}

// VendorCreate creates a vendor
func VendorCreate(c *fiber.Ctx) error {
	var in services.VendorInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid vendor payload")
	}
	if in.Name == "" {
		return badRequest(c, "Vendor name is required")
	}

	vendor, err := services.NewVendorService(database.GetDB()).CreateVendor(c.UserContext(), in)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// VendorView returns one vendor with its brands
func VendorView(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid vendor ID")
	}

	vendor, err := services.NewVendorService(database.GetDB()).GetVendor(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(vendor)
}
