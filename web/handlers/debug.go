package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/purchasing/database"
)

// GetSQLLogs returns the most recent SQL statements, ?limit= to cap them
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetRecentQueries(c.QueryInt("limit", -1))
	return c.JSON(fiber.Map{
		"total":   database.SQLLogger.Total(),
		"queries": queries,
	})
}

// ClearSQLLogs empties the SQL log
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
