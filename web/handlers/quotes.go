package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/purchasing/database"
	"github.com/purchasing/services"
	"github.com/purchasing/web/middleware"
)

const defaultQuoteLimit = 100

type quoteRequest struct {
	Brand    string  `json:"brand"`
	Product  string  `json:"product"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
}

// QuoteCreate records a quote from the vendor in the path, creating the
// brand and product on first sight
func QuoteCreate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid vendor ID")
	}

	var req quoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid quote payload")
	}
	if req.Brand == "" || req.Product == "" {
		return badRequest(c, "Brand and product are required")
	}

	vendor, err := services.NewVendorService(database.GetDB()).GetVendor(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}

	quote, err := catalog().AddProductQuote(c.UserContext(), vendor, req.Brand, req.Product, req.Price, req.Discount)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// QuoteList returns quotes newest first, filtered by vendor_id and product
func QuoteList(c *fiber.Ctx) error {
	filter := services.QuoteFilter{
		ProductName: c.Query("product"),
		Limit:       c.QueryInt("limit", defaultQuoteLimit),
	}
	if v := c.QueryInt("vendor_id", 0); v > 0 {
		filter.VendorID = uint(v)
	}

	quotes, err := catalog().ListQuotes(c.UserContext(), filter)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(quotes)
}

// QuoteListPage renders the latest quotes as HTML
func QuoteListPage(c *fiber.Ctx) error {
	quotes, err := catalog().ListQuotes(c.UserContext(), services.QuoteFilter{Limit: defaultQuoteLimit})
	if err != nil {
		return err
	}

	queries := middleware.RequestQueries(c)
	return c.Render("pages/quotes/list", fiber.Map{
		"Title":           "Quotes",
		"Quotes":          quotes,
		"SQLQueries":      queries,
		"TotalSQLQueries": len(queries),
	}, "layouts/base")
}
