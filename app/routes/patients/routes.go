package patients

import (
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/config"
	"grafono-backend/app/routes/auth"
)

// SetupPatientsRoutes sets up the patient listing routes
func SetupPatientsRoutes(app *fiber.App) {
	patientsAPI := app.Group("/api/patients")
	patientsAPI.Use(auth.AuthMiddleware)

	patientsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetPatientsAPI(c, config.GetDB())
	})
}
