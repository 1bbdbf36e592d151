package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/purchasing/database"
	"github.com/purchasing/services"
)

var catalogOptions services.CatalogOptions

// SetCatalogOptions sets the options used by quote-writing handlers
func SetCatalogOptions(opts services.CatalogOptions) {
	catalogOptions = opts
}

func catalog() *services.CatalogService {
	return services.NewCatalogService(database.GetDB(), catalogOptions)
}

// storeError maps service errors to a JSON response
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
