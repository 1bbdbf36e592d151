package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/purchasing/database"
)

const sqlMarkKey = "SQLMark"

// SQLDebugMiddleware marks the SQL log position at the start of each request
// so pages can list the statements they ran
func SQLDebugMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(sqlMarkKey, database.SQLLogger.Total())
		return c.Next()
	}
}

// RequestQueries returns the statements run since the request started,
// newest first. Without the middleware it returns nothing.
func RequestQueries(c *fiber.Ctx) []database.QueryLog {
	mark, ok := c.Locals(sqlMarkKey).(int)
	if !ok {
		return nil
	}
	return database.SQLLogger.Since(mark)
}
