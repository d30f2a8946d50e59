package availability

import (
	"github.com/gofiber/fiber/v2"

	"grafono-backend/app/config"
	"grafono-backend/app/routes/auth"
)

// SetupAvailabilityRoutes sets up the working-hours configuration routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availabilityAPI := app.Group("/api/availability")
	availabilityAPI.Use(auth.AuthMiddleware)

	availabilityAPI.Get("/", func(c *fiber.Ctx) error {
		return GetAvailabilityAPI(c, config.GetDB())
	})

	availabilityAPI.Put("/", func(c *fiber.Ctx) error {
		return SaveAvailabilityAPI(c, config.GetDB())
	})
}
