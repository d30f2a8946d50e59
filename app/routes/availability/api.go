package availability

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/database"
	"grafono-backend/app/models"
)

// GetAvailabilityAPI returns the working-hours configuration. A null payload
// means none has been saved yet; capacity then falls back to the day-count
// heuristic.
func GetAvailabilityAPI(c *fiber.Ctx, db *sql.DB) error {
	cfg, err := database.GetAvailabilityConfig(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load availability config",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": cfg})
}

// SaveAvailabilityAPI upserts the singleton configuration.
func SaveAvailabilityAPI(c *fiber.Ctx, db *sql.DB) error {
	var cfg models.AvailabilityConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	// Preserve the singleton: a save always targets the current record.
	existing, err := database.GetAvailabilityConfig(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load availability config"})
	}
	if existing != nil {
		cfg.ID = existing.ID
	}

	if err := database.SaveAvailabilityConfig(db, &cfg); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save availability config", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": cfg})
}
