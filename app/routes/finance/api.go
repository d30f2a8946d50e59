package finance

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/services"
)

// GetFinancialMetricsAPI returns the metrics snapshot for an optional date
// range; without one the current calendar month is used.
func GetFinancialMetricsAPI(c *fiber.Ctx, db *sql.DB) error {
	var start, end time.Time

	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid start date, expected YYYY-MM-DD"})
		}
		start = parsed
	}
	if e := c.Query("end"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid end date, expected YYYY-MM-DD"})
		}
		end = parsed
	}
	if start.After(end) && !end.IsZero() {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "start must not be after end"})
	}

	snapshot, err := services.BuildMetricsSnapshot(db, start, end, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to build financial metrics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    snapshot,
	})
}
