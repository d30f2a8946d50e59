package compliance

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/services"
)

// GetComplianceListAPI returns the month's income transactions with their
// delinquency classification. month/year default to the current month; month
// is the zero-based index the frontend's Date API produces.
func GetComplianceListAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month())-1)
	year := c.QueryInt("year", now.Year())
	if month < 0 || month > 11 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "month must be between 0 and 11"})
	}

	records, err := services.GetComplianceList(db, month, year, now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load compliance list",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

// GetDelinquencyStatsAPI returns count, total and age of the overdue debt.
func GetDelinquencyStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := services.GetDelinquencyStats(db, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load delinquency stats",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

type generateChargesRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// GenerateMonthlyChargesAPI creates the missing Mensalidade charges for the
// target month. Safe to call repeatedly; repeated calls create nothing new.
func GenerateMonthlyChargesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req generateChargesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Month < 0 || req.Month > 11 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "month must be between 0 and 11"})
	}
	if req.Year < 2000 || req.Year > 2100 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "year out of range"})
	}

	count, err := services.GenerateMonthlyCharges(services.NewBillingStore(db), req.Month, req.Year, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrDuplicateCharge) {
			// Distinct from generic failures: the storage constraint blocked a
			// concurrent double billing.
			return c.Status(409).JSON(fiber.Map{
				"success": false,
				"error":   "Duplicate monthly charge detected",
				"count":   count,
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate monthly charges",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
	})
}
