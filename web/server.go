package web

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/purchasing/config"
	"github.com/purchasing/services"
	"github.com/purchasing/web/handlers"
	"github.com/purchasing/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(cfg *config.Config) *Server {
	engine := html.New(filepath.Join(cfg.App.WebDir, "templates"), ".html")
	engine.Reload(cfg.App.Environment == "development")

	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	engine.AddFunc("formatMoney", func(amount float64, currency string) string {
		return fmt.Sprintf("%.2f %s", amount, currency)
	})
	engine.AddFunc("percent", func(rate float64) string {
		return fmt.Sprintf("%.0f%%", rate*100)
	})

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.SQLDebugMiddleware())

	app.Static("/static", filepath.Join(cfg.App.WebDir, "static"))

	handlers.SetCatalogOptions(services.CatalogOptions{
		LinkExistingBrands: cfg.Catalog.LinkExistingBrands,
		ConflictRetries:    cfg.Catalog.ConflictRetries,
	})
	RegisterRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	queries := middleware.RequestQueries(c)
	return c.Status(code).Render("pages/error", fiber.Map{
		"Title":           "Error",
		"Error":           err.Error(),
		"Code":            code,
		"SQLQueries":      queries,
		"TotalSQLQueries": len(queries),
	}, "layouts/base")
}

// RegisterRoutes configures all application routes
func RegisterRoutes(app *fiber.App) {
	// Quote overview page
	app.Get("/", handlers.QuoteListPage)

	api := app.Group("/api")

	// Debug endpoint for SQL logs
	api.Get("/debug/sql", handlers.GetSQLLogs)
	api.Delete("/debug/sql", handlers.ClearSQLLogs)

	// Vendors and their quotes
	vendors := api.Group("/vendors")
	vendors.Get("/", handlers.VendorList)
	vendors.Post("/", handlers.VendorCreate)
	vendors.Get("/:id", handlers.VendorView)
	vendors.Post("/:id/quotes", handlers.QuoteCreate)

	// Catalog
	api.Get("/brands", handlers.BrandList)
	api.Get("/products", handlers.ProductList)
	api.Get("/products/:name", handlers.ProductView)
	api.Get("/quotes", handlers.QuoteList)

	// Exchange rate snapshots
	forex := api.Group("/forex")
	forex.Get("/", handlers.ForexList)
	forex.Post("/", handlers.ForexCreate)
	forex.Get("/:code/latest", handlers.ForexLatest)
}
