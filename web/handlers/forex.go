package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/purchasing/database"
	"github.com/purchasing/models"
	"github.com/purchasing/services"
)

type forexRequest struct {
	Date        string  `json:"date"`
	Code        string  `json:"code"`
	UnitsPerUSD float64 `json:"units_per_usd"`
	USDPerUnit  float64 `json:"usd_per_unit"`
}

// ForexList returns rate snapshots, optionally for ?code=
func ForexList(c *fiber.Ctx) error {
	rates, err := services.NewForexService(database.GetDB()).ListRates(c.UserContext(), c.Query("code"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rates)
}

// ForexCreate records a rate snapshot
func ForexCreate(c *fiber.Ctx) error {
	var req forexRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid rate payload")
	}
	if req.Code == "" {
		return badRequest(c, "Currency code is required")
	}

	rate := models.ForexRate{
		Code:        req.Code,
		UnitsPerUSD: req.UnitsPerUSD,
		USDPerUnit:  req.USDPerUnit,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return badRequest(c, "Date must be YYYY-MM-DD")
		}
		rate.Date = date
	}

	if err := services.NewForexService(database.GetDB()).RecordRate(c.UserContext(), &rate); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rate)
}

// ForexLatest returns the newest snapshot of a currency
func ForexLatest(c *fiber.Ctx) error {
	rate, err := services.NewForexService(database.GetDB()).LatestRate(c.UserContext(), c.Params("code"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rate)
}
