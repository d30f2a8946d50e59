package patients

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/database"
)

// GetPatientsAPI lists patients; ?active=true narrows to those in treatment.
func GetPatientsAPI(c *fiber.Ctx, db *sql.DB) error {
	var err error
	var patients interface{}

	if c.Query("active") == "true" {
		patients, err = database.FindActivePatients(db)
	} else {
		patients, err = database.FindAllPatients(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load patients",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": patients})
}
